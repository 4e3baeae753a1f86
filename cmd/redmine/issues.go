package main

import (
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/redmine/pkg/beans"
)

func issuesCommand(a *app) *cobra.Command {
	return newResourceCommand(a, resource[beans.Issue]{
		name:     "issues",
		single:   "issue",
		required: []string{"project-id", "subject"},
		bind:     bindIssueFlags,
	})
}

func bindIssueFlags(fs *pflag.FlagSet) fieldSetter[beans.Issue] {
	project := fs.Int("project-id", 0, "id of the project")
	tracker := fs.Int("tracker-id", 0, "tracker id")
	status := fs.Int("status-id", 0, "status id")
	priority := fs.Int("priority-id", 0, "priority id")
	assignee := fs.Int("assigned-to-id", 0, "id of the assigned user")
	subject := fs.String("subject", "", "issue subject")
	description := fs.String("description", "", "issue description")
	done := fs.Int("done-ratio", 0, "percent done, 0 to 100")

	return func(i *beans.Issue, changed func(string) bool) {
		if changed("project-id") {
			i.ProjectID = *project
		}
		if changed("tracker-id") {
			i.TrackerID = *tracker
		}
		if changed("status-id") {
			i.StatusID = *status
		}
		if changed("priority-id") {
			i.PriorityID = *priority
		}
		if changed("assigned-to-id") {
			i.AssignedToID = *assignee
		}
		if changed("subject") {
			i.Subject = *subject
		}
		if changed("description") {
			i.Description = *description
		}
		if changed("done-ratio") {
			i.DoneRatio = *done
		}
	}
}
