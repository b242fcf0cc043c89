package domain

import (
	"net/mail"
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// SiteFileName is the default name of the provisioning document.
	SiteFileName = "purge.yaml"

	// DefaultIndexDocument is served for directory requests.
	DefaultIndexDocument = "index.html"

	// DefaultBranch is the source branch that triggers the pipeline.
	DefaultBranch = "main"

	// DefaultBuildImage is the build environment used when none is configured.
	DefaultBuildImage = "aws/codebuild/standard:5.0"

	// DefaultFunctionName is the notifier function name used when none is configured.
	DefaultFunctionName = "purge-notifier"

	// DefaultMemoryMB is the notifier memory size used when none is configured.
	DefaultMemoryMB = 1024

	// MinMemoryMB and MaxMemoryMB bound the notifier memory size.
	MinMemoryMB = 128
	MaxMemoryMB = 10240
)

var (
	bucketNamePattern   = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]{1,61}[a-z0-9]$`)
	functionNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)
)

// PublicAccessBlock holds the four bucket public-access-block flags.
type PublicAccessBlock struct {
	BlockPublicACLs       bool
	BlockPublicPolicy     bool
	IgnorePublicACLs      bool
	RestrictPublicBuckets bool
}

// BlockAll returns a PublicAccessBlock with every flag set.
func BlockAll() PublicAccessBlock {
	return PublicAccessBlock{
		BlockPublicACLs:       true,
		BlockPublicPolicy:     true,
		IgnorePublicACLs:      true,
		RestrictPublicBuckets: true,
	}
}

// All reports whether every flag is set.
func (p PublicAccessBlock) All() bool {
	return p.BlockPublicACLs && p.BlockPublicPolicy && p.IgnorePublicACLs && p.RestrictPublicBuckets
}

// Bucket describes the static-website storage bucket.
type Bucket struct {
	Name              string
	IndexDocument     string
	PublicAccessBlock PublicAccessBlock
}

// SecretRef points at an externally managed secret and the JSON field holding the value.
type SecretRef struct {
	Name      string
	JSONField string
}

// Source describes the repository the pipeline pulls from.
type Source struct {
	Owner  string
	Repo   string
	Branch string
	Token  SecretRef
}

// Build describes the build stage environment.
type Build struct {
	Image string
}

// NotifierFunction describes the deployed cache-invalidation function.
type NotifierFunction struct {
	Name     string
	MemoryMB int
}

// SiteConfig is the provisioning-time description of the site and its pipeline.
// It is validated once when loaded and never consulted for per-invocation decisions
// other than as a fallback distribution id.
type SiteConfig struct {
	Bucket        Bucket
	Distribution  DistributionID
	Source        Source
	Build         Build
	Notifier      NotifierFunction
	Notifications []string
}

// Validate checks every field and returns the first violation with its field attached.
func (c *SiteConfig) Validate() error {
	if !bucketNamePattern.MatchString(c.Bucket.Name) || strings.Contains(c.Bucket.Name, "..") {
		return zerr.With(ErrInvalidBucketName, "bucket", c.Bucket.Name)
	}

	if c.Bucket.IndexDocument == "" || strings.Contains(c.Bucket.IndexDocument, "/") {
		return zerr.With(ErrInvalidIndexDocument, "index_document", c.Bucket.IndexDocument)
	}

	if c.Distribution != "" {
		if err := c.Distribution.Validate(); err != nil {
			return err
		}
	}

	if strings.TrimSpace(c.Build.Image) == "" {
		return ErrMissingBuildImage
	}

	if err := c.Source.validate(); err != nil {
		return err
	}

	if !functionNamePattern.MatchString(c.Notifier.Name) {
		return zerr.With(ErrInvalidFunctionName, "function", c.Notifier.Name)
	}

	if c.Notifier.MemoryMB < MinMemoryMB || c.Notifier.MemoryMB > MaxMemoryMB {
		return zerr.With(ErrInvalidMemorySize, "memory_mb", c.Notifier.MemoryMB)
	}

	for _, addr := range c.Notifications {
		if _, err := mail.ParseAddress(addr); err != nil {
			return zerr.With(ErrInvalidEmail, "email", addr)
		}
	}

	return nil
}

func (s Source) validate() error {
	switch {
	case strings.TrimSpace(s.Owner) == "":
		return zerr.With(ErrInvalidSource, "field", "owner")
	case strings.TrimSpace(s.Repo) == "":
		return zerr.With(ErrInvalidSource, "field", "repo")
	case strings.TrimSpace(s.Branch) == "":
		return zerr.With(ErrInvalidSource, "field", "branch")
	}

	if s.Token.Name == "" || s.Token.JSONField == "" {
		return zerr.With(ErrMissingSecretRef, "secret", s.Token.Name)
	}
	return nil
}
