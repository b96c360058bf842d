// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/kevinoid/ytdl2rss/internal/config"
	"github.com/kevinoid/ytdl2rss/internal/info"
	"github.com/kevinoid/ytdl2rss/internal/version"
)

// flagValues holds command line values. Only flags which were set on the
// command line override the configuration file and environment.
type flagValues struct {
	configPath string

	base   string
	output string
	indent string

	title       string
	link        string
	description string
	language    string
	author      string
	image       string
	category    string
	subcategory string
	explicit    string

	requireMedia bool
	requireItems bool
	metricsFile  string
	summary      bool

	logLevel  string
	logFormat string
}

func newRootCommand() *cobra.Command {
	flags := &flagValues{}
	app := newApp(flags)

	rootCmd := &cobra.Command{
		Use:   version.Name + " [flags] <info.json|->...",
		Short: "Create a podcast RSS feed from youtube-dl info JSON",
		Long: `Create a podcast RSS feed from the info JSON files written by
youtube-dl or yt-dlp (--write-info-json, --print-json or -J).

Each argument is a video or playlist info JSON file, or "-" for standard
input. Items appear in argument order, with playlist entries in place.`,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInputs(args); err != nil {
				return err
			}
			cfg, err := app.loadConfig(cmd)
			if err != nil {
				return err
			}
			return app.generate(cmd.Context(), cmd, cfg, args)
		},
	}
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	rootCmd.Flags().BoolP("version", "V", false, "print version and exit")

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "YAML file of feed options")
	pf.StringVarP(&flags.base, "base", "B", "", "URL at which the feed is served")
	pf.StringVarP(&flags.output, "output", "o", "", "write the feed to `PATH` (default stdout)")
	pf.StringVarP(&flags.indent, "indent", "i", "", "indent XML with `STR` or a number of spaces")

	pf.StringVar(&flags.title, "title", "", "channel title")
	pf.StringVar(&flags.link, "link", "", "channel web page URL")
	pf.StringVar(&flags.description, "description", "", "channel description")
	pf.StringVar(&flags.language, "language", "", "channel language tag, e.g. en-US")
	pf.StringVar(&flags.author, "author", "", "channel author")
	pf.StringVar(&flags.image, "image", "", "channel image URL or path")
	pf.StringVar(&flags.category, "category", "", "iTunes category")
	pf.StringVar(&flags.subcategory, "subcategory", "", "iTunes subcategory")
	pf.StringVar(&flags.explicit, "explicit", "", "channel explicit flag (yes|no)")

	pf.BoolVar(&flags.requireMedia, "require-media", false, "skip videos whose media file does not exist")
	pf.BoolVar(&flags.requireItems, "require-items", false, "fail when the feed has no items")
	pf.StringVar(&flags.metricsFile, "metrics-file", "", "write run metrics in Prometheus text format to `PATH`")
	pf.BoolVar(&flags.summary, "summary", false, "print a table of processed videos to stderr")

	pf.StringVar(&flags.logLevel, "log-level", "", "log level (trace|debug|info|warn|error)")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format (auto|console|json)")

	rootCmd.AddCommand(newWatchCommand(app))

	return rootCmd
}

// checkInputs rejects argument lists the loader would fail on late.
func checkInputs(args []string) error {
	if len(args) == 0 {
		return usageError(errNoInputs)
	}
	stdin := 0
	for _, a := range args {
		if a == info.StdinPath {
			stdin++
		}
	}
	if stdin > 1 {
		return usageError(info.ErrStdinReused)
	}
	return nil
}

// applyFlags copies changed flags over cfg.
func applyFlags(cmd *cobra.Command, flags *flagValues, cfg *config.Config) {
	fs := cmd.Flags()
	set := func(name string, dst *string, v string) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	set("base", &cfg.Base, flags.base)
	set("output", &cfg.Output, flags.output)
	set("indent", &cfg.Indent, flags.indent)
	set("title", &cfg.Channel.Title, flags.title)
	set("link", &cfg.Channel.Link, flags.link)
	set("description", &cfg.Channel.Description, flags.description)
	set("language", &cfg.Channel.Language, flags.language)
	set("author", &cfg.Channel.Author, flags.author)
	set("image", &cfg.Channel.Image, flags.image)
	set("category", &cfg.Channel.Category, flags.category)
	set("subcategory", &cfg.Channel.Subcategory, flags.subcategory)
	set("explicit", &cfg.Channel.Explicit, flags.explicit)
	set("metrics-file", &cfg.MetricsFile, flags.metricsFile)
	set("log-level", &cfg.LogLevel, flags.logLevel)
	set("log-format", &cfg.LogFormat, flags.logFormat)

	if fs.Changed("require-media") {
		cfg.RequireMedia = flags.requireMedia
	}
	if fs.Changed("require-items") {
		cfg.RequireItems = flags.requireItems
	}
	if fs.Changed("summary") {
		cfg.Summary = flags.summary
	}
}
