package gallery

import (
	"fmt"
	"strings"
)

const (
	DefaultProHost            = "https://pro-examples.reactflow.dev"
	DefaultLanguage           = "react"
	DefaultPreviewHostPattern = "https://example-apps-git-%s-xyflow.vercel.app"
)

// PreviewConfig holds the hosts used to build preview image URLs.
type PreviewConfig struct {
	BaseURL  string // examples host, see Deployment.BaseURL
	ProHost  string // pro examples host (default DefaultProHost)
	Language string // framework segment of the fallback path (default "react")
}

func (c PreviewConfig) proHost() string {
	if c.ProHost == "" {
		return DefaultProHost
	}
	return strings.TrimRight(c.ProHost, "/")
}

func (c PreviewConfig) language() string {
	if c.Language == "" {
		return DefaultLanguage
	}
	return c.Language
}

// ImageURL resolves the card image for rec. Pro examples always use the pro
// host thumbnail, then an explicit preview_path wins over the conventional
// <base>/<language><route>/preview.jpg location.
func (c PreviewConfig) ImageURL(rec Record) string {
	meta := rec.Meta()
	switch {
	case meta.IsProExample:
		return c.proHost() + "/" + rec.Identifier() + "/thumbnail.jpg"
	case meta.PreviewPath != "":
		return joinURL(c.BaseURL, meta.PreviewPath)
	default:
		return joinURL(c.BaseURL, c.language(), rec.Route, "preview.jpg")
	}
}

// FeaturedImageURL returns the preview of the feature overview example.
func (c PreviewConfig) FeaturedImageURL() string {
	return joinURL(c.BaseURL, c.language(), "examples/misc/overview/preview.jpg")
}

func joinURL(base string, parts ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	for _, p := range parts {
		p = strings.Trim(p, "/")
		if p == "" {
			continue
		}
		b.WriteByte('/')
		b.WriteString(p)
	}
	return b.String()
}

// Deployment describes where the site is running. It replaces reading the
// hosting environment from inside the aggregator.
type Deployment struct {
	Env                string // e.g. "production", "preview"
	CommitRef          string // branch of a preview deployment
	ExamplesURL        string // examples host outside preview deployments
	PreviewHostPattern string // fmt pattern taking CommitRef
}

// BaseURL selects the examples host. Preview deployments of a branch point
// at that branch's example apps; everything else uses ExamplesURL.
func (d Deployment) BaseURL() string {
	if d.Env == "preview" && d.CommitRef != "" {
		pattern := d.PreviewHostPattern
		if pattern == "" {
			pattern = DefaultPreviewHostPattern
		}
		return fmt.Sprintf(pattern, d.CommitRef)
	}
	return d.ExamplesURL
}

// DeploymentFromEnv reads the Vercel deployment variables through getenv.
func DeploymentFromEnv(getenv func(string) string) Deployment {
	return Deployment{
		Env:         getenv("VERCEL_ENV"),
		CommitRef:   getenv("VERCEL_GIT_COMMIT_REF"),
		ExamplesURL: getenv("NEXT_PUBLIC_EXAMPLES_URL"),
	}
}
