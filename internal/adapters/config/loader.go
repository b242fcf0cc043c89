// Package config loads the purge.yaml provisioning document and the runtime settings.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a Loader reading from fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load reads the provisioning document at path, applies defaults and validates it.
// If path is a directory, purge.yaml inside it is read.
func (l *Loader) Load(path string) (*domain.SiteConfig, error) {
	configPath, err := l.resolvePath(path)
	if err != nil {
		return nil, err
	}

	var sitefile Sitefile
	if err := l.readAndUnmarshalYAML(configPath, &sitefile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if sitefile.Version != "" && sitefile.Version != SupportedVersion {
		return nil, zerr.With(domain.ErrUnsupportedConfigVersion, "version", sitefile.Version)
	}

	cfg := toDomain(&sitefile)
	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if !cfg.Bucket.PublicAccessBlock.All() {
		l.Logger.Warn("bucket public access is not fully blocked", "bucket", cfg.Bucket.Name)
	}

	return cfg, nil
}

func (l *Loader) resolvePath(path string) (string, error) {
	if path == "" {
		path = domain.SiteFileName
	}

	info, err := l.FS.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(domain.ErrConfigNotFound, "path", path)
		}
		return "", zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if info.IsDir() {
		return l.resolvePath(filepath.Join(path, domain.SiteFileName))
	}
	return path, nil
}

func (l *Loader) readAndUnmarshalYAML(configPath string, target *Sitefile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

// toDomain maps the document onto the domain model, filling in defaults.
func toDomain(s *Sitefile) *domain.SiteConfig {
	cfg := &domain.SiteConfig{
		Bucket: domain.Bucket{
			Name:              strings.TrimSpace(s.Bucket.Name),
			IndexDocument:     orDefault(s.Bucket.IndexDocument, domain.DefaultIndexDocument),
			PublicAccessBlock: publicAccessBlock(s.Bucket.PublicAccessBlock),
		},
		Distribution: domain.DistributionID(strings.TrimSpace(s.Distribution)),
		Source: domain.Source{
			Owner:  strings.TrimSpace(s.Source.Owner),
			Repo:   strings.TrimSpace(s.Source.Repo),
			Branch: orDefault(s.Source.Branch, domain.DefaultBranch),
			Token: domain.SecretRef{
				Name:      strings.TrimSpace(s.Source.Token.Secret),
				JSONField: orDefault(s.Source.Token.JSONField, strings.TrimSpace(s.Source.Token.Secret)),
			},
		},
		Build: domain.Build{
			Image: orDefault(s.Build.Image, domain.DefaultBuildImage),
		},
		Notifier: domain.NotifierFunction{
			Name:     orDefault(s.Notifier.Name, domain.DefaultFunctionName),
			MemoryMB: s.Notifier.MemoryMB,
		},
		Notifications: s.Notifications,
	}

	if cfg.Notifier.MemoryMB == 0 {
		cfg.Notifier.MemoryMB = domain.DefaultMemoryMB
	}

	return cfg
}

func publicAccessBlock(dto *PublicAccessBlockDTO) domain.PublicAccessBlock {
	p := domain.BlockAll()
	if dto == nil {
		return p
	}

	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.BlockPublicACLs, dto.BlockPublicACLs)
	set(&p.BlockPublicPolicy, dto.BlockPublicPolicy)
	set(&p.IgnorePublicACLs, dto.IgnorePublicACLs)
	set(&p.RestrictPublicBuckets, dto.RestrictPublicBuckets)
	return p
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
