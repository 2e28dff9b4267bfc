package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"planline.app/api-server/common/id"
	"planline.app/api-server/internal/model"
	"planline.app/api-server/internal/service"
	"planline.app/api-server/internal/store"
	"planline.app/api-server/internal/store/memory"
)

// fixture is a fresh in-memory world with two organizations, one active user
// in each, and the services under test.
type fixture struct {
	stores *memory.Store

	projects service.ProjectService
	tasks    service.TaskService
	comments service.CommentService

	orgA *model.Organization
	orgB *model.Organization

	alice *model.Actor // member of orgA
	bob   *model.Actor // member of orgB
}

func newFixture() *fixture {
	stores := memory.New()
	f := &fixture{
		stores:   stores,
		projects: service.NewProjectService(stores, stores),
		tasks:    service.NewTaskService(stores, stores),
		comments: service.NewCommentService(stores, stores),
	}

	f.orgA = seedOrganization(stores, "Org A", "org-a")
	f.orgB = seedOrganization(stores, "Org B", "org-b")
	f.alice = model.ActorForUser(seedUser(stores, "alice@org-a.test", &f.orgA.ID))
	f.bob = model.ActorForUser(seedUser(stores, "bob@org-b.test", &f.orgB.ID))
	return f
}

func seedOrganization(stores store.Provider, name, slug string) *model.Organization {
	org := &model.Organization{
		ID:           id.New(),
		Name:         name,
		Slug:         slug,
		ContactEmail: slug + "@example.test",
	}
	Expect(stores.Organizations().Create(context.Background(), org)).To(Succeed())
	return org
}

func seedUser(stores store.Provider, email string, orgID *int64) *model.User {
	user := &model.User{
		ID:             id.New(),
		Email:          email,
		OrganizationID: orgID,
		IsActive:       true,
	}
	Expect(stores.Users().Create(context.Background(), user)).To(Succeed())
	return user
}

func seedProject(stores store.Provider, orgID int64, name string) *model.Project {
	project := &model.Project{
		ID:             id.New(),
		OrganizationID: orgID,
		Name:           name,
		Status:         model.ProjectActive,
	}
	Expect(stores.Projects().Create(context.Background(), project)).To(Succeed())
	return project
}

func seedTask(stores store.Provider, projectID int64, title string, status model.TaskStatus) *model.Task {
	task := &model.Task{
		ID:        id.New(),
		ProjectID: projectID,
		Title:     title,
		Status:    status,
	}
	Expect(stores.Tasks().Create(context.Background(), task)).To(Succeed())
	return task
}

func seedComment(stores store.Provider, taskID int64, authorID *int64, content string) *model.Comment {
	comment := &model.Comment{
		ID:       id.New(),
		TaskID:   taskID,
		AuthorID: authorID,
		Content:  content,
	}
	Expect(stores.Comments().Create(context.Background(), comment)).To(Succeed())
	return comment
}

func expectRejection(err error, kind service.RejectionKind) *service.Rejection {
	GinkgoHelper()
	rej, ok := service.AsRejection(err)
	Expect(ok).To(BeTrue(), "expected a rejection, got %v", err)
	Expect(rej.Kind).To(Equal(kind))
	return rej
}
