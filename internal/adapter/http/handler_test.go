package httpadapter

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"emerald-console/internal/adapter/usecase"
	"emerald-console/internal/core/domain"
	"emerald-console/internal/core/port"
	"emerald-console/internal/core/port/mocks"
	"emerald-console/internal/debounce"
)

type testConsole struct {
	t       *testing.T
	api     *mocks.MockMarketplace
	clock   *debounce.ManualClock
	handler http.Handler
	cookie  *http.Cookie
}

func newTestConsole(t *testing.T, opts Options) *testConsole {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := &testConsole{t: t, api: mocks.NewMockMarketplace(t), clock: debounce.NewManualClock()}
	sessions := NewSessionStore(context.Background(), time.Hour, func(ctx context.Context) *usecase.Shell {
		return usecase.NewShell(ctx, c.api, usecase.ShellOptions{
			Logger:       logger,
			KeywordDelay: 300 * time.Millisecond,
			Clock:        c.clock,
		})
	})
	t.Cleanup(sessions.Close)
	c.handler = NewHandler(sessions, nil, logger, opts).Router()
	return c
}

func (c *testConsole) do(method, target string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	c.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if htmx {
		req.Header.Set(hxRequestHeader, "true")
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == defaultCookieName {
			c.cookie = ck
		}
	}
	return rec
}

func (c *testConsole) htmx(method, target string, form url.Values) *httptest.ResponseRecorder {
	return c.do(method, target, form, true)
}

func errFailed(msg string) error {
	return &port.RequestFailedError{Message: msg}
}

var acme = domain.Seller{ID: 1, Name: "Acme", EmeraldBalance: domain.NewBalance(domain.MustAmount("12.5"))}

func TestIndexStartsSessionAndListsSellers(t *testing.T) {
	c := newTestConsole(t, Options{})
	c.api.EXPECT().ListSellers(mock.Anything).
		Return([]domain.Seller{acme, {ID: 2, Name: "Broken"}}, nil).Once()

	rec := c.do(http.MethodGet, "/", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, c.cookie)
	require.True(t, c.cookie.HttpOnly)

	body := rec.Body.String()
	require.Contains(t, body, "<html")
	require.Contains(t, body, "Acme")
	require.Contains(t, body, "12.50")
	require.Contains(t, body, "0.00")

	// Second visit reuses the session and does not refetch.
	rec = c.do(http.MethodGet, "/", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestIndexShowsLoadFailure(t *testing.T) {
	c := newTestConsole(t, Options{})
	c.api.EXPECT().ListSellers(mock.Anything).Return(nil, errFailed("Failed to fetch sellers")).Once()

	rec := c.do(http.MethodGet, "/", nil, false)
	body := rec.Body.String()
	require.Contains(t, body, "Failed to fetch sellers")
	require.NotContains(t, body, "New seller")
	require.NotContains(t, body, `action="/sellers/form"`)
}

func TestProductLoadFailureOffersNoCreation(t *testing.T) {
	c := newTestConsole(t, Options{})
	c.api.EXPECT().ListSellers(mock.Anything).Return([]domain.Seller{acme}, nil).Once()
	c.api.EXPECT().ListProducts(mock.Anything, int64(1)).
		Return(nil, errFailed("Failed to fetch products")).Once()

	c.do(http.MethodGet, "/", nil, false)
	rec := c.htmx(http.MethodPost, "/sellers/1/select", url.Values{})
	body := rec.Body.String()
	require.Contains(t, body, "Failed to fetch products")
	require.NotContains(t, body, "New product")
	require.NotContains(t, body, `action="/products/form"`)
}

func TestHTMXRequestsGetMainFragment(t *testing.T) {
	c := newTestConsole(t, Options{})
	c.api.EXPECT().ListSellers(mock.Anything).Return([]domain.Seller{acme}, nil).Once()

	rec := c.htmx(http.MethodGet, "/", nil)
	body := rec.Body.String()
	require.NotContains(t, body, "<html")
	require.NotContains(t, body, "<main")
	require.Contains(t, body, "Acme")
}

func TestPlainPostRedirectsAndDrillsDown(t *testing.T) {
	c := newTestConsole(t, Options{})
	c.api.EXPECT().ListSellers(mock.Anything).Return([]domain.Seller{acme}, nil).Once()
	c.api.EXPECT().ListProducts(mock.Anything, int64(1)).
		Return([]domain.Product{{ID: 10, Name: "Lamp"}}, nil).Once()

	c.do(http.MethodGet, "/", nil, false)
	rec := c.do(http.MethodPost, "/sellers/1/select", url.Values{}, false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	rec = c.do(http.MethodGet, "/", nil, false)
	body := rec.Body.String()
	require.Contains(t, body, "Lamp")
	require.Contains(t, body, "12.50")
	require.Contains(t, body, "/navigation/sellers")
}

func TestCreateSellerValidationIsInline(t *testing.T) {
	c := newTestConsole(t, Options{})
	c.api.EXPECT().ListSellers(mock.Anything).Return([]domain.Seller{}, nil).Once()

	c.htmx(http.MethodGet, "/", nil)
	rec := c.htmx(http.MethodPost, "/sellers", url.Values{"name": {" "}, "initialEmeraldBalance": {"5"}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "seller name is required")
	c.api.AssertNotCalled(t, "CreateSeller", mock.Anything, mock.Anything)
}

func TestStaleActionsAreRejected(t *testing.T) {
	c := newTestConsole(t, Options{})
	c.api.EXPECT().ListSellers(mock.Anything).Return([]domain.Seller{acme}, nil).Once()

	c.htmx(http.MethodGet, "/", nil)

	rec := c.htmx(http.MethodPost, "/sellers/99/select", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.htmx(http.MethodPost, "/sellers/abc/select", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.htmx(http.MethodPost, "/products", url.Values{"name": {"Lamp"}})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = c.htmx(http.MethodPost, "/seller/top-up", url.Values{"amount": {"5"}})
	require.Equal(t, http.StatusConflict, rec.Code)
}

// openCampaigns drives the console to the campaigns of product 10.
func openCampaigns(c *testConsole, campaigns ...domain.Campaign) {
	c.t.Helper()
	c.api.EXPECT().ListSellers(mock.Anything).Return([]domain.Seller{acme}, nil).Once()
	c.api.EXPECT().ListProducts(mock.Anything, int64(1)).Return([]domain.Product{{ID: 10, Name: "Lamp"}}, nil).Once()
	c.api.EXPECT().ListCampaigns(mock.Anything, int64(10)).Return(campaigns, nil).Once()
	c.api.EXPECT().ListTowns(mock.Anything).Return([]domain.Town{{ID: 3, Name: "Springfield"}}, nil).Once()

	c.htmx(http.MethodGet, "/", nil)
	c.htmx(http.MethodPost, "/sellers/1/select", nil)
	rec := c.htmx(http.MethodPost, "/products/10/select", nil)
	require.Equal(c.t, http.StatusOK, rec.Code)
}

func TestKeywordSearchPollsUntilSettled(t *testing.T) {
	c := newTestConsole(t, Options{})
	openCampaigns(c)

	rec := c.htmx(http.MethodPost, "/campaigns/new", nil)
	require.Contains(t, rec.Body.String(), "New campaign")

	c.api.EXPECT().SearchKeywords(mock.Anything, "lam").
		Return([]domain.Keyword{{ID: 1, Value: "lamp"}, {ID: 1, Value: "lamp"}}, nil).Once()

	rec = c.htmx(http.MethodPost, "/campaigns/form/keywords/query", url.Values{"query": {"la"}})
	require.Contains(t, rec.Body.String(), `hx-get="/campaigns/form/keywords/suggestions"`)
	c.htmx(http.MethodPost, "/campaigns/form/keywords/query", url.Values{"query": {"lam"}})

	c.clock.Advance(300 * time.Millisecond)

	rec = c.htmx(http.MethodGet, "/campaigns/form/keywords/suggestions", nil)
	body := rec.Body.String()
	require.NotContains(t, body, "hx-get")
	require.Equal(t, 1, strings.Count(body, `value="lamp"`))

	rec = c.htmx(http.MethodPost, "/campaigns/form/keywords", url.Values{
		"keyword": {"lamp"}, "campaignName": {"Half typed"}, "bidAmount": {"1"},
		"campaignFund": {"5"}, "status": {"ON"}, "townId": {"3"}, "radiusKm": {"2"},
	})
	body = rec.Body.String()
	require.Contains(t, body, `value="Half typed"`)
	require.Contains(t, body, `<option value="3" selected>Springfield</option>`)
	require.Contains(t, body, `aria-label="Remove lamp"`)
}

func TestSubmitCampaignRefreshesBalance(t *testing.T) {
	c := newTestConsole(t, Options{})
	openCampaigns(c)
	c.htmx(http.MethodPost, "/campaigns/new", nil)

	town := int64(3)
	created := domain.Campaign{ID: 7, CampaignFields: domain.CampaignFields{
		Name: "Summer Sale", Keywords: []string{}, BidAmount: domain.MustAmount("1.5"),
		CampaignFund: domain.MustAmount("100"), Status: domain.StatusOn, TownID: &town, RadiusKm: 10,
	}}
	c.api.EXPECT().CreateCampaign(mock.Anything, int64(10), created.CampaignFields).Return(created, nil).Once()
	charged := acme
	charged.EmeraldBalance = domain.NewBalance(domain.MustAmount("2.5"))
	c.api.EXPECT().GetSeller(mock.Anything, int64(1)).Return(charged, nil).Once()

	rec := c.htmx(http.MethodPost, "/campaigns/form", url.Values{
		"campaignName": {"Summer Sale"}, "bidAmount": {"1.5"}, "campaignFund": {"100"},
		"status": {"ON"}, "townId": {"3"}, "radiusKm": {"10"},
	})
	body := rec.Body.String()
	require.Contains(t, body, "Summer Sale")
	require.Contains(t, body, "Springfield")
	require.Contains(t, body, "2.50")
	require.NotContains(t, body, "campaign-form")
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	c := newTestConsole(t, Options{})
	spring := domain.Campaign{ID: 5, CampaignFields: domain.DefaultCampaignFields()}
	spring.Name = "Spring"
	openCampaigns(c, spring)

	rec := c.htmx(http.MethodPost, "/campaigns/5/delete", nil)
	require.Contains(t, rec.Body.String(), "alertdialog")

	rec = c.htmx(http.MethodPost, "/campaigns/delete/cancel", nil)
	require.NotContains(t, rec.Body.String(), "alertdialog")
	c.api.AssertNotCalled(t, "DeleteCampaign", mock.Anything, mock.Anything)

	c.api.EXPECT().DeleteCampaign(mock.Anything, int64(5)).Return(nil).Once()
	c.api.EXPECT().GetSeller(mock.Anything, int64(1)).Return(acme, nil).Once()
	c.htmx(http.MethodPost, "/campaigns/5/delete", nil)
	rec = c.htmx(http.MethodPost, "/campaigns/delete/confirm", nil)
	require.Contains(t, rec.Body.String(), "No campaigns yet.")
}

func TestCampaignRowOpensEditForm(t *testing.T) {
	c := newTestConsole(t, Options{})
	spring := domain.Campaign{ID: 5, CampaignFields: domain.DefaultCampaignFields()}
	spring.Name = "Spring"
	openCampaigns(c, spring)

	body := c.htmx(http.MethodGet, "/", nil).Body.String()
	require.Contains(t, body, `<tr class="clickable" hx-post="/campaigns/5/edit" hx-trigger="click"`)
	require.Contains(t, body, `<form class="inline delete" method="post" action="/campaigns/5/delete" onclick="event.stopPropagation()"`)

	body = c.htmx(http.MethodPost, "/campaigns/5/edit", nil).Body.String()
	require.Contains(t, body, "Edit campaign")
	require.Contains(t, body, `value="Spring"`)
	require.Contains(t, body, `name="bidAmount" type="number" min="0.01" step="0.01"`)
	require.Contains(t, body, `name="campaignFund" type="number" min="0.01" step="0.01"`)
	require.Contains(t, body, `name="radiusKm" type="number" min="1" step="1"`)
}

func TestHealthAndMetrics(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})
	c := newTestConsole(t, Options{Metrics: metrics})

	rec := c.do(http.MethodGet, "/healthz", nil, false)
	require.Equal(t, "ok", rec.Body.String())

	rec = c.do(http.MethodGet, "/metrics", nil, false)
	require.Equal(t, "# metrics", rec.Body.String())

	c = newTestConsole(t, Options{})
	rec = c.do(http.MethodGet, "/metrics", nil, false)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
