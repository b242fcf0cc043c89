package domain

// Stage names of the delivery pipeline, in execution order.
const (
	StageSource          = "Source"
	StageBuild           = "Build"
	StageInvalidateCache = "InvalidateCache"
)

// Stage is one step of the delivery pipeline as described by a SiteConfig.
type Stage struct {
	Name   string
	Action string
	Detail string
}

// Stages lists the pipeline stages the configuration implies.
// Each stage gates the next on its reported outcome.
func (c *SiteConfig) Stages() []Stage {
	dist := string(c.Distribution)
	if dist == "" {
		dist = "<bound at deploy time>"
	}

	return []Stage{
		{
			Name:   StageSource,
			Action: "GitHubSource",
			Detail: c.Source.Owner + "/" + c.Source.Repo + "@" + c.Source.Branch,
		},
		{
			Name:   StageBuild,
			Action: "CodeBuild",
			Detail: c.Build.Image + " -> s3://" + c.Bucket.Name,
		},
		{
			Name:   StageInvalidateCache,
			Action: "LambdaInvoke",
			Detail: c.Notifier.Name + " purges " + InvalidateAllPath + " on " + dist,
		},
	}
}
