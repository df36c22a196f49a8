package cms

import (
	"context"
	"errors"
	"net/url"

	"law_site_go/models"
)

// Typed operations over the CMS collections. Every getter returns fresh
// data; "not found" is a nil record or empty list, never an error.

func baseQuery(locale string) url.Values {
	q := url.Values{}
	q.Set("populate", "*")
	if locale != "" {
		q.Set("locale", locale)
	}
	return q
}

// GetServices returns all practice areas, optionally locale-filtered.
func (c *Client) GetServices(ctx context.Context, locale string) ([]models.Service, error) {
	res, err := c.get(ctx, "/services", baseQuery(locale))
	if err != nil {
		return nil, err
	}
	items, err := decodeList(res.Data)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	out := make([]models.Service, 0, len(items))
	for _, item := range items {
		out = append(out, c.decodeService(item))
	}
	return out, nil
}

// GetServiceBySlug returns the first service matching slug, or nil when none
// matches. Slug uniqueness is the CMS's responsibility; first match wins.
func (c *Client) GetServiceBySlug(ctx context.Context, slug, locale string) (*models.Service, error) {
	q := baseQuery(locale)
	q.Set("filters[slug][$eq]", slug)
	res, err := c.get(ctx, "/services", q)
	if err != nil {
		return nil, err
	}
	items, err := decodeList(res.Data)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	if len(items) == 0 {
		return nil, nil
	}
	svc := c.decodeService(items[0])
	return &svc, nil
}

// GetTeamMembers returns all team member profiles.
func (c *Client) GetTeamMembers(ctx context.Context, locale string) ([]models.TeamMember, error) {
	res, err := c.get(ctx, "/team-members", baseQuery(locale))
	if err != nil {
		return nil, err
	}
	items, err := decodeList(res.Data)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	out := make([]models.TeamMember, 0, len(items))
	for _, item := range items {
		out = append(out, c.decodeTeamMember(item))
	}
	return out, nil
}

// GetTeamMemberByID returns a single profile, or nil when the id is unknown.
func (c *Client) GetTeamMemberByID(ctx context.Context, id string) (*models.TeamMember, error) {
	q := url.Values{}
	q.Set("populate", "*")
	res, err := c.get(ctx, "/team-members/"+url.PathEscape(id), q)
	if err != nil {
		var re *RequestError
		// The CMS answers 404 for unknown ids on single-record endpoints.
		if errors.As(err, &re) && re.Status == 404 {
			return nil, nil
		}
		return nil, err
	}
	item, err := decodeSingle(res.Data)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	if item == nil {
		return nil, nil
	}
	member := c.decodeTeamMember(item)
	return &member, nil
}

// GetClients returns the represented-companies strip.
func (c *Client) GetClients(ctx context.Context) ([]models.Client, error) {
	res, err := c.get(ctx, "/clients", baseQuery(""))
	if err != nil {
		return nil, err
	}
	items, err := decodeList(res.Data)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	out := make([]models.Client, 0, len(items))
	for _, item := range items {
		out = append(out, models.Client{
			ID:       intField(item, "id"),
			Name:     strField(item, "name"),
			Logo:     c.mediaField(item, "logo"),
			Industry: strField(item, "industry"),
		})
	}
	return out, nil
}

// GetTestimonials returns all testimonials.
func (c *Client) GetTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	res, err := c.get(ctx, "/testimonials", baseQuery(""))
	if err != nil {
		return nil, err
	}
	items, err := decodeList(res.Data)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	out := make([]models.Testimonial, 0, len(items))
	for _, item := range items {
		out = append(out, models.Testimonial{
			ID:      intField(item, "id"),
			Name:    strField(item, "name"),
			Role:    strField(item, "role"),
			Company: strField(item, "company"),
			Content: strField(item, "content"),
			Rating:  intField(item, "rating"),
			Image:   c.mediaField(item, "image"),
		})
	}
	return out, nil
}

// GetBlogPosts returns blog posts, newest first.
func (c *Client) GetBlogPosts(ctx context.Context, locale string) ([]models.BlogPost, error) {
	q := baseQuery(locale)
	q.Set("sort", "publishedAt:desc")
	res, err := c.get(ctx, "/blogs", q)
	if err != nil {
		return nil, err
	}
	items, err := decodeList(res.Data)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	out := make([]models.BlogPost, 0, len(items))
	for _, item := range items {
		out = append(out, c.decodeBlogPost(item))
	}
	return out, nil
}

// GetBlogPostBySlug returns the first post matching slug, or nil.
func (c *Client) GetBlogPostBySlug(ctx context.Context, slug, locale string) (*models.BlogPost, error) {
	q := baseQuery(locale)
	q.Set("filters[slug][$eq]", slug)
	res, err := c.get(ctx, "/blogs", q)
	if err != nil {
		return nil, err
	}
	items, err := decodeList(res.Data)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	if len(items) == 0 {
		return nil, nil
	}
	post := c.decodeBlogPost(items[0])
	return &post, nil
}

// GetPages returns all free-form CMS pages.
func (c *Client) GetPages(ctx context.Context) ([]models.Page, error) {
	res, err := c.get(ctx, "/pages", baseQuery(""))
	if err != nil {
		return nil, err
	}
	items, err := decodeList(res.Data)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	out := make([]models.Page, 0, len(items))
	for _, item := range items {
		out = append(out, models.Page{
			ID:      intField(item, "id"),
			Title:   strField(item, "title"),
			Slug:    strField(item, "slug"),
			Content: richTextField(item, "content"),
		})
	}
	return out, nil
}

// GetPageBySlug returns the first page matching slug, or nil.
func (c *Client) GetPageBySlug(ctx context.Context, slug string) (*models.Page, error) {
	q := baseQuery("")
	q.Set("filters[slug][$eq]", slug)
	res, err := c.get(ctx, "/pages", q)
	if err != nil {
		return nil, err
	}
	items, err := decodeList(res.Data)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &models.Page{
		ID:      intField(items[0], "id"),
		Title:   strField(items[0], "title"),
		Slug:    strField(items[0], "slug"),
		Content: richTextField(items[0], "content"),
	}, nil
}

// Search queries: a case-insensitive substring filter ($containsi) composed
// with $or over the fields that matter per collection. Server-returned order
// is preserved; no local ranking.

// SearchTeamMembers matches query against name and role.
func (c *Client) SearchTeamMembers(ctx context.Context, query, locale string) ([]models.TeamMember, error) {
	q := baseQuery(locale)
	q.Set("filters[$or][0][name][$containsi]", query)
	q.Set("filters[$or][1][role][$containsi]", query)
	res, err := c.get(ctx, "/team-members", q)
	if err != nil {
		return nil, err
	}
	items, err := decodeList(res.Data)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	out := make([]models.TeamMember, 0, len(items))
	for _, item := range items {
		out = append(out, c.decodeTeamMember(item))
	}
	return out, nil
}

// SearchServices matches query against title and description.
func (c *Client) SearchServices(ctx context.Context, query, locale string) ([]models.Service, error) {
	q := baseQuery(locale)
	q.Set("filters[$or][0][title][$containsi]", query)
	q.Set("filters[$or][1][description][$containsi]", query)
	res, err := c.get(ctx, "/services", q)
	if err != nil {
		return nil, err
	}
	items, err := decodeList(res.Data)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	out := make([]models.Service, 0, len(items))
	for _, item := range items {
		out = append(out, c.decodeService(item))
	}
	return out, nil
}

// SearchBlogPosts matches query against title and excerpt.
func (c *Client) SearchBlogPosts(ctx context.Context, query, locale string) ([]models.BlogPost, error) {
	q := baseQuery(locale)
	q.Set("filters[$or][0][title][$containsi]", query)
	q.Set("filters[$or][1][excerpt][$containsi]", query)
	res, err := c.get(ctx, "/blogs", q)
	if err != nil {
		return nil, err
	}
	items, err := decodeList(res.Data)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	out := make([]models.BlogPost, 0, len(items))
	for _, item := range items {
		out = append(out, c.decodeBlogPost(item))
	}
	return out, nil
}

// Create operations. POST a {"data": {...}} envelope; no retry.

// SubscriberExists pre-checks email uniqueness so a duplicate subscription
// becomes a friendly message instead of a server-side constraint error.
func (c *Client) SubscriberExists(ctx context.Context, email string) (bool, error) {
	q := url.Values{}
	q.Set("filters[email][$eq]", email)
	res, err := c.get(ctx, "/subscribers", q)
	if err != nil {
		return false, err
	}
	items, err := decodeList(res.Data)
	if err != nil {
		return false, &RequestError{Err: err}
	}
	return len(items) > 0, nil
}

// CreateSubscriber adds a newsletter subscription.
func (c *Client) CreateSubscriber(ctx context.Context, email string) (*models.Subscriber, error) {
	res, err := c.post(ctx, "/subscribers", map[string]string{"email": email})
	if err != nil {
		return nil, err
	}
	item, err := decodeSingle(res.Data)
	if err != nil || item == nil {
		return nil, &RequestError{Err: err}
	}
	return &models.Subscriber{
		ID:        intField(item, "id"),
		Email:     strField(item, "email"),
		CreatedAt: timeField(item, "createdAt"),
	}, nil
}

// ContactSubmission is the payload for the contact form collection.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// CreateContactSubmission records a contact form submission.
func (c *Client) CreateContactSubmission(ctx context.Context, sub ContactSubmission) error {
	_, err := c.post(ctx, "/contact-submissions", sub)
	return err
}

// AppointmentRequest is the payload for the appointment booking collection.
type AppointmentRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Message string `json:"message,omitempty"`
}

// CreateAppointment books a consultation.
func (c *Client) CreateAppointment(ctx context.Context, req AppointmentRequest) error {
	_, err := c.post(ctx, "/appointments", req)
	return err
}

// per-kind decoders

func (c *Client) decodeService(m map[string]interface{}) models.Service {
	return models.Service{
		ID:          intField(m, "id"),
		Title:       strField(m, "title"),
		Description: strField(m, "description"),
		Content:     richTextField(m, "content"),
		Slug:        strField(m, "slug"),
		Features:    strSliceField(m, "features"),
		Image:       c.mediaField(m, "image"),
	}
}

func (c *Client) decodeTeamMember(m map[string]interface{}) models.TeamMember {
	return models.TeamMember{
		ID:         intField(m, "id"),
		Name:       strField(m, "name"),
		Role:       strField(m, "role"),
		Experience: strField(m, "experience"),
		Specialty:  strField(m, "specialty"),
		Image:      c.mediaField(m, "image"),
		Bio:        strField(m, "bio"),
	}
}

func (c *Client) decodeBlogPost(m map[string]interface{}) models.BlogPost {
	return models.BlogPost{
		ID:            intField(m, "id"),
		Title:         strField(m, "title"),
		Slug:          strField(m, "slug"),
		Content:       richTextField(m, "content"),
		Excerpt:       strField(m, "excerpt"),
		Author:        strField(m, "author"),
		PublishedAt:   timeField(m, "publishedAt"),
		Tags:          strSliceField(m, "tags"),
		Category:      strField(m, "category"),
		FeaturedImage: c.mediaField(m, "featuredImage"),
	}
}
