package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/alexisbeaulieu97/restyle/internal/localization"
	"github.com/alexisbeaulieu97/restyle/internal/semantic"
	"github.com/alexisbeaulieu97/restyle/internal/style"
	"github.com/alexisbeaulieu97/restyle/internal/theme"
)

func newInspectCmd(flags *rootFlags) *cobra.Command {
	var resource bool

	cmd := &cobra.Command{
		Use:   "inspect <markup>",
		Short: "Show how markup is parsed into tagged components and styled runs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, flags, args[0], resource)
		},
	}

	cmd.Flags().BoolVar(&resource, "resource", false, "Treat the argument as a string table key")

	return cmd
}

func runInspect(cmd *cobra.Command, flags *rootFlags, input string, resource bool) error {
	app, err := loadAppContext(cmd, flags)
	if err != nil {
		return err
	}

	text := semantic.XMLString(input)
	if resource {
		text = semantic.XMLResource(localization.NewResource(input))
	}

	env := app.environment(detectTraits(cmd.OutOrStdout(), colorNever))
	tree := buildInspectTree(input, text, env)
	fmt.Fprint(cmd.OutOrStdout(), tree.String())
	return nil
}

func buildInspectTree(title string, text semantic.Text, env theme.Env) treeprint.Tree {
	tree := treeprint.NewWithRoot(fmt.Sprintf("%q (%s, %s)", title, env.Theme, env.Locale))

	components := tree.AddBranch("components")
	for _, c := range semantic.Parse(text, env.Locale).Components() {
		components.AddNode(describeComponent(c))
	}

	runs := tree.AddBranch("runs")
	rendered := text.Render(style.NewAttributesProvider(theme.Body, env))
	for _, run := range rendered.Runs() {
		if len(run.Attrs) == 0 {
			runs.AddNode(fmt.Sprintf("%q", run.Text))
			continue
		}
		runs.AddMetaNode(run.Attrs.String(), fmt.Sprintf("%q", run.Text))
	}
	return tree
}

func describeComponent(c semantic.Component) string {
	tags := make([]string, len(c.Tags))
	for i, tag := range c.Tags {
		tags[i] = string(tag)
	}
	var body string
	switch c.Content.Kind() {
	case semantic.KindPlain:
		body = fmt.Sprintf("%q", c.Content.PlainText())
	case semantic.KindRich:
		body = fmt.Sprintf("%q", c.Content.RichText().String())
	case semantic.KindLocalized:
		res, args := c.Content.Resource()
		body = fmt.Sprintf("%s %v", res.Key, args)
	default:
		body = "dynamic"
	}
	return fmt.Sprintf("[%s] %s %s", strings.Join(tags, " > "), c.Content.Kind(), body)
}
