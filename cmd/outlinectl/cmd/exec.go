package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ar4mirez/outlinectl/internal/output"
	"github.com/ar4mirez/outlinectl/pkg/outline"
)

// newGroupCmd builds the cobra command for one registry group.
func newGroupCmd(a *app, group groupSpec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   group.use,
		Short: group.short,
	}
	for _, spec := range group.commands {
		cmd.AddCommand(newLeafCmd(a, spec))
	}
	return cmd
}

// newLeafCmd builds a leaf command from its spec. Every leaf carries the
// shared --format selector; paginated leaves also get --limit/--offset/--all.
func newLeafCmd(a *app, spec commandSpec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   spec.use,
		Short: spec.short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, spec)
		},
	}

	flags := cmd.Flags()
	for _, f := range spec.flags {
		switch f.typ {
		case flagString, flagJSON, flagFile:
			flags.String(f.name, "", f.usage)
		case flagInt:
			flags.Int(f.name, 0, f.usage)
		case flagBool, flagOptBool:
			flags.Bool(f.name, false, f.usage)
		case flagList:
			flags.StringSlice(f.name, nil, f.usage)
		}
		if f.required {
			_ = cmd.MarkFlagRequired(f.name)
		}
	}

	if spec.paginated {
		flags.Int("limit", outline.DefaultPageSize, "Number of results per page")
		flags.Int("offset", 0, "Starting offset")
		flags.Bool("all", false, "Fetch all results (auto-paginate)")
	}
	flags.String("format", output.FormatJSON, "Output format (json or table)")

	return cmd
}

// run is the single executor behind every leaf: assemble parameters, make
// the call (one request, or auto-pagination under --all), render, print.
func (a *app) run(cmd *cobra.Command, spec commandSpec) error {
	params, err := buildParams(cmd, spec.flags)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	client := outline.New(cfg.BaseURL, cfg.APIKey, outline.WithLogger(a.logger()))

	var result any
	if spec.paginated {
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")
		all, _ := cmd.Flags().GetBool("all")

		if all {
			items, err := client.Paginate(cmd.Context(), spec.endpoint, params, limit, 0)
			if err != nil {
				return err
			}
			result = map[string]any{"data": items}
		} else {
			params["limit"] = limit
			params["offset"] = offset
			result, err = client.Request(cmd.Context(), spec.endpoint, params)
			if err != nil {
				return err
			}
		}
	} else {
		result, err = client.Request(cmd.Context(), spec.endpoint, params)
		if err != nil {
			return err
		}
	}

	rendered, err := output.Render(result, format, nil)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, rendered)
	return nil
}

// buildParams assembles the request body from the command's flags. A flag
// contributes its parameter only when set on the command line, except
// boolean switches, which are always transmitted. Unset optional values
// never reach the wire.
func buildParams(cmd *cobra.Command, specs []flagSpec) (outline.Params, error) {
	params := outline.Params{}
	flags := cmd.Flags()

	for _, f := range specs {
		switch f.typ {
		case flagBool:
			v, _ := flags.GetBool(f.name)
			params[f.param] = v

		case flagOptBool:
			if flags.Changed(f.name) {
				v, _ := flags.GetBool(f.name)
				params[f.param] = v
			}

		case flagString:
			if flags.Changed(f.name) {
				v, _ := flags.GetString(f.name)
				params[f.param] = v
			}

		case flagInt:
			if flags.Changed(f.name) {
				v, _ := flags.GetInt(f.name)
				params[f.param] = v
			}

		case flagJSON:
			if flags.Changed(f.name) {
				raw, _ := flags.GetString(f.name)
				var v any
				if err := json.Unmarshal([]byte(raw), &v); err != nil {
					return nil, fmt.Errorf("invalid JSON for --%s: %w", f.name, err)
				}
				params[f.param] = v
			}

		case flagList:
			if flags.Changed(f.name) {
				v, _ := flags.GetStringSlice(f.name)
				params[f.param] = v
			}

		case flagFile:
			if flags.Changed(f.name) {
				path, _ := flags.GetString(f.name)
				contents, err := os.ReadFile(path)
				if err != nil {
					return nil, fmt.Errorf("failed to read %s: %w", path, err)
				}
				params[f.param] = string(contents)
			}
		}
	}

	return params, nil
}
