// Package beans holds the built-in Redmine entities and their codecs.
package beans

import "github.com/bft-labs/redmine/pkg/entity"

// ProjectConfig maps Project onto /projects.
var ProjectConfig = entity.Config[Project]{
	SingleName: "project",
	PluralName: "projects",
	Writer:     WriteProject,
	Parser:     ParseProject,
}

// IssueConfig maps Issue onto /issues.
var IssueConfig = entity.Config[Issue]{
	SingleName: "issue",
	PluralName: "issues",
	Writer:     WriteIssue,
	Parser:     ParseIssue,
}

// DefaultRegistry returns a registry with every built-in entity.
func DefaultRegistry() *entity.Registry {
	r := entity.NewRegistry()
	entity.MustRegister(r, ProjectConfig)
	entity.MustRegister(r, IssueConfig)
	return r
}
