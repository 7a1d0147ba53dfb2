package console

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	qt "github.com/frankban/quicktest"

	"go.wusul.io/sdk/accesspasses"
	"go.wusul.io/sdk/internal/client"
	"go.wusul.io/sdk/pkg/apierr"
	"go.wusul.io/sdk/types"
	"go.wusul.io/sdk/wusultest"
)

func newTestClients(c *qt.C, options ...wusultest.Option) (*Client, *accesspasses.Client, *wusultest.Server) {
	srv := wusultest.NewServer("test_account", "test_secret", options...)
	c.Cleanup(srv.Close)

	cfg := client.NewConfig("test_account", "test_secret")
	cfg.BaseURL = srv.URL
	raw, err := client.New(cfg)
	c.Assert(err, qt.IsNil)
	return NewClient(raw), accesspasses.NewClient(raw), srv
}

func createParams() *types.CreateCardTemplateParams {
	return &types.CreateCardTemplateParams{
		Name:     "Employee Badge",
		Platform: types.PlatformApple,
		UseCase:  types.UseCaseEmployeeBadge,
		Protocol: types.ProtocolDesfire,
		Design: &types.CardTemplateDesign{
			BackgroundColor: "#FFFFFF",
			LogoURL:         "https://example.com/logo.png",
		},
		SupportInfo: &types.SupportInfo{
			Email:   "support@example.com",
			Website: "https://example.com/support",
		},
	}
}

func TestTemplates(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	ctx := context.Background()
	console, _, srv := newTestClients(c)

	tmpl, err := console.CreateTemplate(ctx, createParams())
	c.Assert(err, qt.IsNil)
	c.Assert(tmpl.ID, qt.Not(qt.Equals), "")
	c.Assert(tmpl.Protocol, qt.Equals, types.ProtocolDesfire)
	c.Assert(tmpl.Design.LogoURL, qt.Equals, "https://example.com/logo.png")

	req, _ := srv.LastRequest()
	c.Assert(req.Method, qt.Equals, http.MethodPost)
	c.Assert(req.Path, qt.Equals, "/v1/console/card-templates")

	read, err := console.ReadTemplate(ctx, tmpl.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(read.Name, qt.Equals, "Employee Badge")
	req, _ = srv.LastRequest()
	c.Assert(req.Method, qt.Equals, http.MethodGet)
	c.Assert(req.Path, qt.Equals, "/v1/console/card-templates/"+tmpl.ID)

	updated, err := console.UpdateTemplate(ctx, &types.UpdateCardTemplateParams{
		CardTemplateID: tmpl.ID,
		Name:           "Contractor Badge",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(updated.Name, qt.Equals, "Contractor Badge")
	c.Assert(updated.Platform, qt.Equals, types.PlatformApple)
	req, _ = srv.LastRequest()
	c.Assert(req.Method, qt.Equals, http.MethodPatch)
	c.Assert(string(req.Body), qt.Equals, `{"name":"Contractor Badge"}`)

	c.Assert(srv.IsPublished(tmpl.ID), qt.IsFalse)
	resp, err := console.PublishTemplate(ctx, tmpl.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(resp.Success, qt.IsTrue)
	c.Assert(resp.Data["id"], qt.Equals, tmpl.ID)
	c.Assert(resp.Data["publish_status"], qt.Equals, "published")
	c.Assert(srv.IsPublished(tmpl.ID), qt.IsTrue)
	req, _ = srv.LastRequest()
	c.Assert(req.Path, qt.Equals, "/v1/console/card-templates/"+tmpl.ID+"/publish")
}

func TestPublishTemplateKeepsEnvelope(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"data":{"id":"tpl_1","publish_status":"published","published_at":"2025-03-01T12:00:00Z"},"metadata":{"timestamp":"2025-03-01T12:00:00Z"}}`)
	}))
	c.Cleanup(srv.Close)

	cfg := client.NewConfig("test_account", "test_secret")
	cfg.BaseURL = srv.URL
	raw, err := client.New(cfg)
	c.Assert(err, qt.IsNil)

	resp, err := NewClient(raw).PublishTemplate(context.Background(), "tpl_1")
	c.Assert(err, qt.IsNil)
	c.Assert(resp.Success, qt.IsTrue)
	c.Assert(resp.Data["publish_status"], qt.Equals, "published")
}

func TestTemplateErrors(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	ctx := context.Background()
	console, _, srv := newTestClients(c)

	_, err := console.ReadTemplate(ctx, "tpl_missing")
	c.Assert(err, qt.ErrorIs, apierr.ErrNotFound)

	p := createParams()
	p.Protocol = "iclass"
	_, err = console.CreateTemplate(ctx, p)
	c.Assert(err, qt.ErrorIs, apierr.ErrInvalidParameter)

	p = createParams()
	p.Design.LogoURL = "not a url"
	_, err = console.CreateTemplate(ctx, p)
	c.Assert(err, qt.ErrorIs, apierr.ErrInvalidParameter)

	_, err = console.UpdateTemplate(ctx, &types.UpdateCardTemplateParams{Name: "No Id"})
	c.Assert(err, qt.ErrorIs, apierr.ErrInvalidParameter)
	_, err = console.PublishTemplate(ctx, "")
	c.Assert(err, qt.ErrorIs, apierr.ErrInvalidParameter)

	// Only the lookup reached the server
	c.Assert(srv.Requests(), qt.HasLen, 1)
}

func TestRequiresEnterpriseTier(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	console, _, _ := newTestClients(c, wusultest.WithTier(types.AccountTierProfessional))

	_, err := console.CreateTemplate(context.Background(), createParams())
	c.Assert(err, qt.ErrorIs, apierr.ErrAuthentication)

	_, err = console.EventLog(context.Background(), nil)
	c.Assert(err, qt.ErrorIs, apierr.ErrAuthentication)
}

func TestEventLog(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	ctx := context.Background()

	clk := clock.NewMock()
	clk.Set(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	console, passes, srv := newTestClients(c, wusultest.WithClock(clk))

	pass, err := passes.Issue(ctx, &types.IssueAccessPassParams{
		CardTemplateID: "tpl_1",
		FullName:       "John Doe",
		StartDate:      "2025-01-01",
		ExpirationDate: "2026-01-01",
	})
	c.Assert(err, qt.IsNil)

	clk.Add(48 * time.Hour)
	_, err = passes.Suspend(ctx, pass.ID)
	c.Assert(err, qt.IsNil)

	events, err := console.EventLog(ctx, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(events, qt.HasLen, 2)
	c.Assert(events[0].EventType, qt.Equals, "access_pass_suspended")
	c.Assert(events[1].EventType, qt.Equals, "access_pass_issued")
	c.Assert(events[1].AccessPassID, qt.Equals, pass.ID)

	events, err = console.EventLog(ctx, &types.ReadEventLogParams{
		AccessPassID: pass.ID,
		EventType:    "access_pass_issued",
		Limit:        types.Uint32(5),
	})
	c.Assert(err, qt.IsNil)
	c.Assert(events, qt.HasLen, 1)
	req, _ := srv.LastRequest()
	c.Assert(req.Path, qt.Equals, "/v1/console/event-log")
	c.Assert(req.Query.Get("limit"), qt.Equals, "5")
	c.Assert(req.Query.Get("eventType"), qt.Equals, "access_pass_issued")

	// The end date is inclusive
	events, err = console.EventLog(ctx, &types.ReadEventLogParams{StartDate: "2025-03-01", EndDate: "2025-03-01"})
	c.Assert(err, qt.IsNil)
	c.Assert(events, qt.HasLen, 1)
	c.Assert(events[0].EventType, qt.Equals, "access_pass_issued")

	events, err = console.EventLog(ctx, &types.ReadEventLogParams{StartDate: "2025-03-02"})
	c.Assert(err, qt.IsNil)
	c.Assert(events, qt.HasLen, 1)
	c.Assert(events[0].EventType, qt.Equals, "access_pass_suspended")

	_, err = console.EventLog(ctx, &types.ReadEventLogParams{StartDate: "March 1st"})
	c.Assert(err, qt.ErrorIs, apierr.ErrInvalidParameter)
}

func TestTemplatePath(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	c.Assert(templatePath("tpl 1"), qt.Equals, "/v1/console/card-templates/tpl%201")
}
