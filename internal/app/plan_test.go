package app_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/purge/internal/app"
	"go.trai.ch/purge/internal/core/domain"
)

func siteConfig() *domain.SiteConfig {
	return &domain.SiteConfig{
		Bucket: domain.Bucket{
			Name:              "uow-cca-static-website",
			IndexDocument:     "index.html",
			PublicAccessBlock: domain.BlockAll(),
		},
		Distribution: "E1234ABCD",
		Source: domain.Source{
			Owner:  "acme",
			Repo:   "site",
			Branch: "main",
			Token:  domain.SecretRef{Name: "github-PAT", JSONField: "github-PAT"},
		},
		Build:         domain.Build{Image: domain.DefaultBuildImage},
		Notifier:      domain.NotifierFunction{Name: "invalidate-cache", MemoryMB: 1024},
		Notifications: []string{"ops@example.com"},
	}
}

func TestRenderPlan(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	require.NoError(t, app.RenderPlan(&buf, siteConfig()))

	g := goldie.New(t)
	g.Assert(t, "plan", buf.Bytes())
}

func TestRenderPlan_Unbound(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	cfg := siteConfig()
	cfg.Distribution = ""
	cfg.Bucket.PublicAccessBlock.BlockPublicPolicy = false
	cfg.Notifications = nil

	var buf bytes.Buffer
	require.NoError(t, app.RenderPlan(&buf, cfg))

	g := goldie.New(t)
	g.Assert(t, "plan_unbound", buf.Bytes())
}

func TestApp_Plan(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	h := newHarness(t)

	h.loader.EXPECT().Load(domain.SiteFileName).Return(siteConfig(), nil)

	var buf bytes.Buffer
	require.NoError(t, h.app.Plan(t.Context(), domain.SiteFileName, &buf))

	g := goldie.New(t)
	g.Assert(t, "plan", buf.Bytes())
}
