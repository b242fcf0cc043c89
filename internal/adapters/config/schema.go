package config

// SupportedVersion is the only purge.yaml schema version understood by the loader.
const SupportedVersion = "1"

// Sitefile represents the structure of the purge.yaml provisioning document.
type Sitefile struct {
	Version       string      `yaml:"version"`
	Bucket        BucketDTO   `yaml:"bucket"`
	Distribution  string      `yaml:"distribution"`
	Source        SourceDTO   `yaml:"source"`
	Build         BuildDTO    `yaml:"build"`
	Notifier      NotifierDTO `yaml:"notifier"`
	Notifications []string    `yaml:"notifications"`
}

// BucketDTO describes the site bucket.
type BucketDTO struct {
	Name              string                `yaml:"name"`
	IndexDocument     string                `yaml:"indexDocument"`
	PublicAccessBlock *PublicAccessBlockDTO `yaml:"publicAccessBlock"`
}

// PublicAccessBlockDTO holds the public-access-block flags. Unset flags default to true.
type PublicAccessBlockDTO struct {
	BlockPublicACLs       *bool `yaml:"blockPublicAcls"`
	BlockPublicPolicy     *bool `yaml:"blockPublicPolicy"`
	IgnorePublicACLs      *bool `yaml:"ignorePublicAcls"`
	RestrictPublicBuckets *bool `yaml:"restrictPublicBuckets"`
}

// SourceDTO describes the source repository and its OAuth token secret.
type SourceDTO struct {
	Owner  string    `yaml:"owner"`
	Repo   string    `yaml:"repo"`
	Branch string    `yaml:"branch"`
	Token  SecretDTO `yaml:"token"`
}

// SecretDTO references a secret; JSONField defaults to the secret name.
type SecretDTO struct {
	Secret    string `yaml:"secret"`
	JSONField string `yaml:"jsonField"`
}

// BuildDTO describes the build environment.
type BuildDTO struct {
	Image string `yaml:"image"`
}

// NotifierDTO describes the cache-invalidation function.
type NotifierDTO struct {
	Name     string `yaml:"name"`
	MemoryMB int    `yaml:"memoryMB"`
}
