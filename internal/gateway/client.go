package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"admin/internal/models"

	"github.com/go-resty/resty/v2"
)

// Session carries the upstream bearer token. It is injected explicitly at
// construction; nothing in this package reads ambient state.
type Session struct {
	Token string
}

// Client talks to the marketplace backend over REST. A single attempt per
// call, no retry, no backoff: the first error wins and is folded into the
// response envelope.
type Client struct {
	http *resty.Client
}

var _ IGateway = (*Client)(nil)

func NewClient(baseURL string, session Session) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	if session.Token != "" {
		client.SetAuthToken(session.Token)
	}
	return &Client{http: client}
}

// Login authenticates against the backend without an existing session and
// returns the bearer token envelope.
func Login(ctx context.Context, baseURL, email, password string) models.Envelope[models.LoginData] {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")

	request := client.R().
		SetContext(ctx).
		SetBody(models.AuthLoginBody{Email: email, Password: password})

	return execute[models.LoginData](request, resty.MethodPost, "/admin/login")
}

// execute performs the request and folds every failure class into the
// envelope. A body that does not parse leaves Success at its false zero value.
func execute[T any](request *resty.Request, method, path string) models.Envelope[T] {
	var out models.Envelope[T]

	response, err := request.SetResult(&out).SetError(&out).Execute(method, path)
	if err != nil {
		return models.Envelope[T]{Message: fmt.Sprintf("upstream request failed: %v", err)}
	}

	if !out.Success && out.Message == "" {
		out.Message = fmt.Sprintf("upstream returned %s", response.Status())
	}

	return out
}

func (c *Client) ListUsers(ctx context.Context, query models.UserListQuery) models.Envelope[models.UsersPage] {
	request := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page":   strconv.Itoa(query.Page),
			"limit":  strconv.Itoa(query.Limit),
			"search": query.Search,
			"status": query.Status,
		})
	return execute[models.UsersPage](request, resty.MethodGet, "/api/admin/users")
}

func (c *Client) GetUser(ctx context.Context, id string) models.Envelope[models.UserPage] {
	path := fmt.Sprintf("/api/admin/users/%s", url.PathEscape(id))
	return execute[models.UserPage](c.http.R().SetContext(ctx), resty.MethodGet, path)
}

func (c *Client) ListOrders(ctx context.Context, query models.OrderListQuery) models.Envelope[models.OrdersPage] {
	request := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page":   strconv.Itoa(query.Page),
			"limit":  strconv.Itoa(query.Limit),
			"status": query.Status,
		})
	return execute[models.OrdersPage](request, resty.MethodGet, "/api/admin/orders")
}

func (c *Client) ListProducts(ctx context.Context, query models.ProductListQuery) models.Envelope[models.ProductsPage] {
	request := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page":     strconv.Itoa(query.Page),
			"limit":    strconv.Itoa(query.Limit),
			"search":   query.Search,
			"status":   query.Status,
			"category": query.Category,
		})
	return execute[models.ProductsPage](request, resty.MethodGet, "/api/admin/products")
}

func (c *Client) ListCategories(ctx context.Context) models.Envelope[models.CategoriesPage] {
	return execute[models.CategoriesPage](c.http.R().SetContext(ctx), resty.MethodGet, "/api/categories")
}

func (c *Client) CreateCategory(ctx context.Context, body models.CategoryCreateBody) models.Envelope[models.Empty] {
	request := c.http.R().SetContext(ctx).SetBody(body)
	return execute[models.Empty](request, resty.MethodPost, "/api/categories")
}

func (c *Client) RegisterEmployee(ctx context.Context, body models.EmployeeCreateBody) models.Envelope[models.Empty] {
	request := c.http.R().SetContext(ctx).SetBody(body)
	return execute[models.Empty](request, resty.MethodPost, "/api/admin/register")
}

func (c *Client) UpdateUserStatus(ctx context.Context, id string, body models.UserStatusBody) models.Envelope[models.Empty] {
	request := c.http.R().SetContext(ctx).SetBody(body)
	path := fmt.Sprintf("/api/admin/users/%s/status", url.PathEscape(id))
	return execute[models.Empty](request, resty.MethodPut, path)
}

func (c *Client) UpdateUserVerification(ctx context.Context, id string, body models.UserVerificationBody) models.Envelope[models.Empty] {
	request := c.http.R().SetContext(ctx).SetBody(body)
	path := fmt.Sprintf("/api/admin/users/%s/verification", url.PathEscape(id))
	return execute[models.Empty](request, resty.MethodPut, path)
}

func (c *Client) UpdateProductStatus(ctx context.Context, id string, body models.ProductStatusBody) models.Envelope[models.Empty] {
	request := c.http.R().SetContext(ctx).SetBody(body)
	path := fmt.Sprintf("/api/admin/products/%s/status", url.PathEscape(id))
	return execute[models.Empty](request, resty.MethodPut, path)
}

func (c *Client) DashboardStats(ctx context.Context) models.Envelope[models.DashboardStats] {
	return execute[models.DashboardStats](c.http.R().SetContext(ctx), resty.MethodGet, "/api/admin/dashboard")
}
