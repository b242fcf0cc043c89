package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/purge/internal/core/domain"
)

func validSite() domain.SiteConfig {
	return domain.SiteConfig{
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

func TestSiteConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *domain.SiteConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(_ *domain.SiteConfig) {}},
		{name: "no distribution is allowed", mutate: func(c *domain.SiteConfig) { c.Distribution = "" }},
		{
			name:    "uppercase bucket",
			mutate:  func(c *domain.SiteConfig) { c.Bucket.Name = "MyBucket" },
			wantErr: domain.ErrInvalidBucketName,
		},
		{
			name:    "short bucket",
			mutate:  func(c *domain.SiteConfig) { c.Bucket.Name = "ab" },
			wantErr: domain.ErrInvalidBucketName,
		},
		{
			name:    "double dot bucket",
			mutate:  func(c *domain.SiteConfig) { c.Bucket.Name = "my..bucket" },
			wantErr: domain.ErrInvalidBucketName,
		},
		{
			name:    "index document with path",
			mutate:  func(c *domain.SiteConfig) { c.Bucket.IndexDocument = "docs/index.html" },
			wantErr: domain.ErrInvalidIndexDocument,
		},
		{
			name:    "malformed distribution",
			mutate:  func(c *domain.SiteConfig) { c.Distribution = "E-INVALID" },
			wantErr: domain.ErrInvalidDistributionID,
		},
		{
			name:    "missing image",
			mutate:  func(c *domain.SiteConfig) { c.Build.Image = " " },
			wantErr: domain.ErrMissingBuildImage,
		},
		{
			name:    "missing owner",
			mutate:  func(c *domain.SiteConfig) { c.Source.Owner = "" },
			wantErr: domain.ErrInvalidSource,
		},
		{
			name:    "missing branch",
			mutate:  func(c *domain.SiteConfig) { c.Source.Branch = "" },
			wantErr: domain.ErrInvalidSource,
		},
		{
			name:    "missing secret field",
			mutate:  func(c *domain.SiteConfig) { c.Source.Token.JSONField = "" },
			wantErr: domain.ErrMissingSecretRef,
		},
		{
			name:    "function name with spaces",
			mutate:  func(c *domain.SiteConfig) { c.Notifier.Name = "invalidate cache" },
			wantErr: domain.ErrInvalidFunctionName,
		},
		{
			name:    "memory too small",
			mutate:  func(c *domain.SiteConfig) { c.Notifier.MemoryMB = 64 },
			wantErr: domain.ErrInvalidMemorySize,
		},
		{
			name:    "bad email",
			mutate:  func(c *domain.SiteConfig) { c.Notifications = []string{"not-an-address"} },
			wantErr: domain.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := validSite()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestSiteConfig_Stages(t *testing.T) {
	t.Parallel()

	c := validSite()
	stages := c.Stages()
	require.Len(t, stages, 3)

	assert.Equal(t, domain.StageSource, stages[0].Name)
	assert.Equal(t, "acme/site@main", stages[0].Detail)
	assert.Equal(t, domain.StageBuild, stages[1].Name)
	assert.Equal(t, "aws/codebuild/standard:5.0 -> s3://uow-cca-static-website", stages[1].Detail)
	assert.Equal(t, domain.StageInvalidateCache, stages[2].Name)
	assert.Equal(t, "invalidate-cache purges /* on E1234ABCD", stages[2].Detail)

	c.Distribution = ""
	assert.Contains(t, c.Stages()[2].Detail, "<bound at deploy time>")
}

func TestSettings_Validate(t *testing.T) {
	t.Parallel()

	s := domain.DefaultSettings()
	require.NoError(t, s.Validate())

	s.ReportTo = "email"
	assert.ErrorContains(t, s.Validate(), domain.ErrInvalidSettings.Error())

	s = domain.DefaultSettings()
	s.LogFormat = "xml"
	assert.ErrorContains(t, s.Validate(), domain.ErrInvalidSettings.Error())
}

func TestPublicAccessBlock_All(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.BlockAll().All())
	p := domain.BlockAll()
	p.IgnorePublicACLs = false
	assert.False(t, p.All())
}
