package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy of cfg and what is wrong with it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.ToLower(strings.TrimSpace(x))
			if x == "" || seen[x] {
				continue
			}
			seen[x] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.App.Host = strings.TrimSpace(out.App.Host)
	out.Site.Title = strings.TrimSpace(out.Site.Title)
	out.Site.BaseURL = strings.TrimRight(strings.TrimSpace(out.Site.BaseURL), "/")
	out.Catalog.Path = strings.TrimSpace(out.Catalog.Path)
	out.Log.Level = strings.ToLower(strings.TrimSpace(out.Log.Level))
	out.Log.Format = strings.ToLower(strings.TrimSpace(out.Log.Format))
	out.Logos.AllowHosts = trimList(out.Logos.AllowHosts)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}
	if out.Site.Title == "" {
		res.addWarn("site.title is empty; pages will have a blank heading.")
	}
	if out.Site.BaseURL != "" {
		u, err := url.Parse(out.Site.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			res.addErr("site.base_url must be an absolute http(s) URL")
		}
	}

	switch out.Log.Level {
	case "":
		out.Log.Level = "info"
	case "debug", "info", "warn", "error":
	default:
		res.addErr("log.level must be one of debug, info, warn, error")
	}
	switch out.Log.Format {
	case "":
		out.Log.Format = "json"
	case "json", "console":
	default:
		res.addErr("log.format must be json or console")
	}

	if out.Logos.Enabled {
		if out.Logos.RequestsPerSecond <= 0 {
			res.addErr("logos.requests_per_second must be > 0 when logos.enabled=true")
		}
		if out.Logos.Burst <= 0 {
			res.addErr("logos.burst must be > 0 when logos.enabled=true")
		}
		if out.Logos.MaxBytes <= 0 {
			res.addErr("logos.max_bytes must be > 0 when logos.enabled=true")
		} else if out.Logos.MaxBytes > 8<<20 {
			res.addWarn("logos.max_bytes is very large (%d); logos are stored in sqlite.", out.Logos.MaxBytes)
		}
		if out.Logos.WarmParallelism <= 0 {
			res.addErr("logos.warm_parallelism must be > 0 when logos.enabled=true")
		}
		if out.Logos.RetryMinutes <= 0 {
			res.addErr("logos.retry_minutes must be > 0 when logos.enabled=true")
		}
		if len(out.Logos.AllowHosts) == 0 {
			res.addWarn("logos.allow_hosts is empty; logos will be fetched from any host.")
		}
	}

	return out, res
}
