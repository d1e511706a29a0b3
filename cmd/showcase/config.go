package main

import (
	"os"

	"github.com/eringen/showcase"
	"github.com/eringen/showcase/gallery"
)

// siteConfig builds the library configuration from flags, SHOWCASE_* env
// and the config file. The deployment comes from the hosting environment.
func siteConfig() showcase.SiteConfig {
	deployment := gallery.DeploymentFromEnv(os.Getenv)
	if u := v.GetString("examples_url"); u != "" {
		deployment.ExamplesURL = u
	}
	if p := v.GetString("preview_host_pattern"); p != "" {
		deployment.PreviewHostPattern = p
	}
	return showcase.SiteConfig{
		Name:         v.GetString("name"),
		URL:          v.GetString("url"),
		Description:  v.GetString("description"),
		Addr:         v.GetString("addr"),
		DatabasePath: v.GetString("database"),
		ContentDir:   v.GetString("content"),
		WatchContent: v.GetBool("watch"),
		Deployment:   deployment,
		ProHost:      v.GetString("pro_host"),
		Language:     v.GetString("language"),

		FeaturedRoute:       v.GetString("featured_route"),
		FeaturedTitle:       v.GetString("featured_title"),
		FeaturedDescription: v.GetString("featured_description"),

		AdminPassword: v.GetString("admin_password"),
		SessionSecret: v.GetString("session_secret"),
		CookieSecure:  v.GetBool("cookie_secure"),
		CacheTTL:      v.GetDuration("cache_ttl"),
	}
}

func previewConfig() gallery.PreviewConfig {
	return siteConfig().PreviewConfig()
}
