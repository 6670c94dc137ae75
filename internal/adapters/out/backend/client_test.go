package backend_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"logistics/internal/adapters/out/backend"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/session"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ ports.AuthGateway    = (*backend.Client)(nil)
	_ ports.CatalogGateway = (*backend.Client)(nil)
	_ ports.OrderGateway   = (*backend.Client)(nil)
)

const secret = "dev_secret"

var issuedAt = time.Now().UTC().Truncate(time.Second)

func signToken(t *testing.T, uid uint64, role string, key string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"uid":  uid,
		"role": role,
		"iat":  issuedAt.Unix(),
		"exp":  issuedAt.Add(2 * time.Hour).Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

type recorded struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   map[string]any
}

// fakeBackend mimics the routes of the logistics backend.
type fakeBackend struct {
	t      *testing.T
	token  string
	mu     sync.Mutex
	calls  []recorded
	server *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	f := &fakeBackend{t: t, token: signToken(t, 7, "admin", secret)}

	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rec := recorded{
				Method: c.Request().Method,
				Path:   c.Request().URL.Path,
				Query:  c.Request().URL.RawQuery,
				Auth:   c.Request().Header.Get("Authorization"),
			}
			if c.Request().ContentLength > 0 {
				var body map[string]any
				_ = json.NewDecoder(c.Request().Body).Decode(&body)
				rec.Body = body
			}
			f.mu.Lock()
			f.calls = append(f.calls, rec)
			f.mu.Unlock()
			return next(c)
		}
	})

	e.POST("/api/login", func(c echo.Context) error {
		f.mu.Lock()
		body := f.calls[len(f.calls)-1].Body
		f.mu.Unlock()
		if body["password"] != "secret" {
			return c.String(http.StatusUnauthorized, "Invalid credentials\n")
		}
		return c.JSON(http.StatusOK, map[string]string{"token": f.token})
	})
	e.POST("/api/users", func(c echo.Context) error {
		f.mu.Lock()
		body := f.calls[len(f.calls)-1].Body
		f.mu.Unlock()
		if body["email"] == "taken@example.com" {
			return c.String(http.StatusBadRequest, "email already registered")
		}
		return c.JSON(http.StatusCreated, map[string]any{"id": 12, "email": body["email"]})
	})
	e.GET("/api/addresses", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, []byte(`[
			{"id":10,"customer_id":42,"street":"Reforma","exterior_number":"100","neighborhood":"Centro","postal_code":"06000","city":"CDMX","state":"CDMX","country":"Mexico","is_active":true},
			{"id":11,"customer_id":42,"street":"Juárez","city":"CDMX"}
		]`))
	})
	e.GET("/api/package-types", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, []byte(`[
			{"id":1,"size_code":"S","max_weight_kg":5,"description":"Chico","is_active":true},
			{"id":2,"size_code":"M","max_weight_kg":25,"description":"Mediano","is_active":false}
		]`))
	})
	e.GET("/api/orders/status", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, []byte(`[{"label":"Creada","value":"created"},{"label":"Entregada","value":"delivered"}]`))
	})
	e.GET("/api/orders/:id", func(c echo.Context) error {
		if c.Param("id") != "77" {
			return c.String(http.StatusNotFound, "order not found")
		}
		return c.JSONBlob(http.StatusOK, []byte(`{
			"id":77,"order_number":"ORD-77","created_at":"2026-10-14T10:00:00Z","user_id":42,"full_name":"Ana Pérez",
			"origin_address_id":10,"ao_street":"Reforma","ao_exterior":"100","ao_neighborhood":"Centro","ao_city":"CDMX","ao_postal":"06000",
			"destination_address_id":11,"ad_street":"Juárez","ad_exterior":"5","ad_neighborhood":"Roma","ad_city":"CDMX","ad_postal":"06700",
			"actual_weight_kg":3.5,"package_type_id":1,"size_code":"S","observations":"frágil","internal_notes":"revisar",
			"updated_at":"2026-10-14T11:00:00Z","status":"in_route"
		}`))
	})
	e.GET("/api/orders", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, []byte(`[
			{"id":1,"order_number":"ORD-1","customer_id":42,"created_by":42,"origin_address_id":10,"destination_address_id":11,
			 "package_type_id":1,"actual_weight_kg":2,"status":"created","updated_by":null,
			 "created_at":"2026-10-14T10:00:00Z","updated_at":"2026-10-14T10:00:00Z"},
			{"id":0,"status":"broken"}
		]`))
	})
	e.POST("/api/orders", func(c echo.Context) error {
		f.mu.Lock()
		body := f.calls[len(f.calls)-1].Body
		f.mu.Unlock()
		body["id"] = 501
		body["order_number"] = "ORD-501"
		return c.JSON(http.StatusCreated, body)
	})
	e.PATCH("/api/orders/:id/status", func(c echo.Context) error {
		if c.Param("id") == "13" {
			return c.String(http.StatusBadRequest, "invalid transition")
		}
		return c.NoContent(http.StatusNoContent)
	})

	f.server = httptest.NewServer(e)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeBackend) last() recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(f.t, f.calls)
	return f.calls[len(f.calls)-1]
}

func newClient(t *testing.T, f *fakeBackend, opts ...backend.Option) *backend.Client {
	t.Helper()
	c, err := backend.NewClient(f.server.URL+"/", time.Second, opts...)
	require.NoError(t, err)
	return c
}

func TestNewClient_RejectsBadURL(t *testing.T) {
	_, err := backend.NewClient("", time.Second)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = backend.NewClient("localhost:8080", time.Second)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestClient_Authenticate(t *testing.T) {
	f := newFakeBackend(t)

	t.Run("unverified claims", func(t *testing.T) {
		c := newClient(t, f)
		identity, err := c.Authenticate(t.Context(), "admin@example.com", "secret")
		require.NoError(t, err)

		assert.Equal(t, f.token, identity.Token)
		assert.Equal(t, kernel.ID(7), identity.UserID)
		assert.Equal(t, session.RoleAdmin, identity.Role)
		assert.Equal(t, "admin@example.com", identity.Email)
		assert.True(t, identity.ExpiresAt.Equal(issuedAt.Add(2*time.Hour)))

		last := f.last()
		assert.Equal(t, http.MethodPost, last.Method)
		assert.Equal(t, "/api/login", last.Path)
		assert.Empty(t, last.Auth)
	})

	t.Run("verified with the right secret", func(t *testing.T) {
		c := newClient(t, f, backend.WithJWTSecret(secret))
		_, err := c.Authenticate(t.Context(), "admin@example.com", "secret")
		require.NoError(t, err)
	})

	t.Run("verified with the wrong secret", func(t *testing.T) {
		c := newClient(t, f, backend.WithJWTSecret("other"))
		_, err := c.Authenticate(t.Context(), "admin@example.com", "secret")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		c := newClient(t, f)
		_, err := c.Authenticate(t.Context(), "admin@example.com", "wrong")

		var be *errs.BackendError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, http.StatusUnauthorized, be.StatusCode)
		assert.Equal(t, "Invalid credentials", be.Message)
	})
}

func TestClient_Register(t *testing.T) {
	f := newFakeBackend(t)
	c := newClient(t, f)

	require.NoError(t, c.Register(t.Context(), "new@example.com", "secret"))
	assert.Equal(t, "client", f.last().Body["role"])

	err := c.Register(t.Context(), "taken@example.com", "secret")
	var be *errs.BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "email already registered", be.Error())
}

func TestClient_Catalogs(t *testing.T) {
	f := newFakeBackend(t)
	c := newClient(t, f)
	ctx := t.Context()

	addresses, err := c.ListAddresses(ctx, "tok", nil)
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.Equal(t, "Reforma 100 Centro CDMX 06000", addresses[0].Label())
	assert.True(t, addresses[1].IsActive)
	assert.Empty(t, f.last().Query)
	assert.Equal(t, "Bearer tok", f.last().Auth)

	owner := kernel.ID(42)
	_, err = c.ListAddresses(ctx, "tok", &owner)
	require.NoError(t, err)
	assert.Equal(t, "customer_id=42", f.last().Query)

	types, err := c.ListPackageTypes(ctx, "tok")
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.InDelta(t, 5, types[0].MaxWeightKg, 1e-9)
	assert.False(t, types[1].IsActive)

	statuses, err := c.ListStatusOptions(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "Entregada", statuses[1].Label)
	assert.Equal(t, "delivered", statuses[1].Value)
}

func TestClient_GetDetail(t *testing.T) {
	f := newFakeBackend(t)
	c := newClient(t, f)

	detail, err := c.GetDetail(t.Context(), "tok", 77)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(42), detail.OwnerID)
	assert.Equal(t, "Ana Pérez", detail.OwnerName)
	assert.Equal(t, kernel.ID(10), detail.Origin.ID)
	assert.Equal(t, "Juárez", detail.Destination.Street)
	assert.Equal(t, 1, detail.Quantity)
	assert.Equal(t, order.InRoute, detail.Status)

	_, err = c.GetDetail(t.Context(), "tok", 78)
	var be *errs.BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusNotFound, be.StatusCode)
}

func TestClient_List(t *testing.T) {
	f := newFakeBackend(t)
	c := newClient(t, f)

	orders, err := c.List(t.Context(), "tok", true)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-1", orders[0].OrderNumber())
	assert.False(t, orders[0].UpdatedBy().IsSet())
	assert.Equal(t, "all=1", f.last().Query)

	_, err = c.List(t.Context(), "tok", false)
	require.NoError(t, err)
	assert.Empty(t, f.last().Query)
}

func TestClient_Create(t *testing.T) {
	f := newFakeBackend(t)
	c := newClient(t, f)

	w, err := kernel.NewWeight(3)
	require.NoError(t, err)
	draft, err := order.NewOrder(order.Draft{
		CustomerID:           1,
		OriginAddressID:      10,
		DestinationAddressID: 20,
		Quantity:             1,
		Weight:               w,
		PackageTypeID:        1,
		CreatedAt:            issuedAt,
	})
	require.NoError(t, err)

	created, err := c.Create(t.Context(), "tok", draft)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(501), created.ID())
	assert.Equal(t, "ORD-501", created.OrderNumber())

	body := f.last().Body
	assert.Equal(t, "created", body["status"])
	assert.EqualValues(t, 1, body["customer_id"])
	assert.EqualValues(t, 1, body["created_by"])
	assert.EqualValues(t, 0, body["id"])
	assert.Equal(t, "", body["order_number"])
	assert.Equal(t, "", body["internal_notes"])
	assert.EqualValues(t, 3, body["actual_weight_kg"])
	assert.EqualValues(t, 1, body["package_type_id"])
}

func TestClient_PatchStatus(t *testing.T) {
	f := newFakeBackend(t)
	c := newClient(t, f)

	require.NoError(t, c.PatchStatus(t.Context(), "tok", 12, "entregado", "firmado"))
	last := f.last()
	assert.Equal(t, http.MethodPatch, last.Method)
	assert.Equal(t, "/api/orders/12/status", last.Path)
	assert.Equal(t, map[string]any{"status": "entregado", "internal_notes": "firmado"}, last.Body)

	err := c.PatchStatus(t.Context(), "tok", 13, order.Cancelled, "")
	var be *errs.BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "invalid transition", be.Message)
}
