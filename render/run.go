// Package render assembles a composed stylesheet from per-breakpoint CSS
// rule files.
package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/JohnAlbin/styled-media-queries/css"
	"github.com/JohnAlbin/styled-media-queries/media"
	"github.com/JohnAlbin/styled-media-queries/state"
)

// baseName is the rule file emitted outside of any media query.
const baseName = "base"

// Run is the render subcommand action.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input directory has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("unable to access input directory: %w", err)
	}
	if !fi.Mode().IsDir() {
		return fmt.Errorf("input source is not a directory: %s", src)
	}

	env.Overwrite = cmd.Bool("overwrite")

	if env.Media, err = media.FromConfig(env.Cfg, env.Log); err != nil {
		return err
	}

	log.Info("Rendering starting", zap.String("source", src), zap.Int("breakpoints", env.Media.Len()))
	defer func(start time.Time) {
		log.Info("Rendering completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	sheet, err := BuildStylesheet(ctx, src, env.Media, log)
	if err != nil {
		return err
	}

	dst := cmd.String("output")
	if len(dst) == 0 {
		_, err = os.Stdout.WriteString(sheet)
		return err
	}

	if _, err := os.Stat(dst); err == nil && !env.Overwrite {
		return fmt.Errorf("destination already exists, use --overwrite to replace: %s", dst)
	}
	if err := os.WriteFile(dst, []byte(sheet), 0644); err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	log.Info("Stylesheet written", zap.String("file", dst), zap.Int("bytes", len(sheet)))
	return nil
}

// BuildStylesheet reads rule files from dir and composes the final
// stylesheet: base.css first, verbatim, then one @media block per breakpoint
// that has a matching <name>.css file, in set order. Rule files that match no
// breakpoint are reported and skipped.
func BuildStylesheet(ctx context.Context, dir string, set *media.Set, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var parts []string

	if data, err := readRules(dir, baseName); err != nil {
		return "", err
	} else if data != nil {
		parts = append(parts, strings.TrimSpace(string(data)))
		log.Debug("Added base rules", zap.Int("bytes", len(data)))
	}

	for _, name := range set.Names() {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		data, err := readRules(dir, name)
		if err != nil {
			return "", err
		}
		if data == nil {
			log.Debug("No rules for breakpoint", zap.String("breakpoint", name))
			continue
		}

		tag, _ := set.Tag(name)
		frag := tag(css.Lit(string(data)))
		parts = append(parts, frag.String())
		log.Debug("Wrapped breakpoint rules", zap.String("breakpoint", name), zap.Int("bytes", len(data)))
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no stylesheet sources found in %s", dir)
	}

	reportStrays(dir, set, log)

	return strings.Join(parts, "\n\n") + "\n", nil
}

// readRules returns the contents of <dir>/<name>.css, or nil when the file
// does not exist.
func readRules(dir, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(dir, name+".css"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read rules for %q: %w", name, err)
	}
	return data, nil
}

// reportStrays logs .css files that correspond to no configured breakpoint.
func reportStrays(dir string, set *media.Set, log *zap.Logger) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".css")
		if name == e.Name() || e.IsDir() || name == baseName {
			continue
		}
		if _, ok := set.Tag(name); !ok {
			log.Warn("Rule file matches no configured breakpoint", zap.String("file", e.Name()))
		}
	}
}
