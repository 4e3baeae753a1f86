package main

import (
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/redmine/pkg/beans"
)

func projectsCommand(a *app) *cobra.Command {
	return newResourceCommand(a, resource[beans.Project]{
		name:     "projects",
		single:   "project",
		required: []string{"name", "identifier"},
		bind:     bindProjectFlags,
	})
}

func bindProjectFlags(fs *pflag.FlagSet) fieldSetter[beans.Project] {
	name := fs.String("name", "", "project name")
	identifier := fs.String("identifier", "", "project identifier used in URLs")
	description := fs.String("description", "", "project description")
	homepage := fs.String("homepage", "", "project homepage")
	parent := fs.Int("parent-id", 0, "id of the parent project")

	return func(p *beans.Project, changed func(string) bool) {
		if changed("name") {
			p.Name = *name
		}
		if changed("identifier") {
			p.Identifier = *identifier
		}
		if changed("description") {
			p.Description = *description
		}
		if changed("homepage") {
			p.Homepage = *homepage
		}
		if changed("parent-id") {
			p.ParentID = *parent
		}
	}
}
