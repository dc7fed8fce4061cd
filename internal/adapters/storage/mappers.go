package storage

import (
	"strconv"
	"strings"

	"github.com/renato0307/cereja/internal/domain"
)

// operationToModels converts a terminal domain.Operation into its archive
// rows. Items and tasks carry a position so order survives the round trip.
func operationToModels(op *domain.Operation) (OperationModel, []OperationItemModel, []OperationTaskModel) {
	model := OperationModel{
		BaseRepoPath:        op.BaseRepoPath,
		CompletedAt:         op.CompletedAt,
		CurrentIndex:        op.CurrentIndex,
		FinalStatus:         op.FinalStatus,
		HooksEnabled:        op.HooksEnabled,
		IsAuxiliaryCheckout: op.IsAuxiliaryCheckout,
		MainlineParent:      op.MainlineParent,
		OperationID:         op.OperationID,
		Organization:        op.Organization,
		Phase:               string(op.Phase),
		Project:             op.Project,
		ReleaseName:         op.ReleaseName,
		RepoPath:            op.RepoPath,
		Repository:          op.Repository,
		SchemaVersion:       op.SchemaVersion,
		SourceBranch:        op.SourceBranch,
		StartedAt:           op.CreatedAt,
		TargetBranch:        op.TargetBranch,
		WorkTreePath:        op.WorkTreePath,
	}

	items := make([]OperationItemModel, 0, len(op.Items))
	for i, item := range op.Items {
		items = append(items, OperationItemModel{
			FailureReason: item.FailureReason,
			MergeCommit:   item.MergeCommit,
			OperationID:   op.OperationID,
			Position:      i,
			PullRequestID: item.PullRequestID,
			Status:        string(item.Status),
			Title:         item.Title,
			WorkItemIDs:   joinWorkItemIDs(item.WorkItemIDs),
		})
	}

	tasks := make([]OperationTaskModel, 0, len(op.PostTasks))
	for i, task := range op.PostTasks {
		tasks = append(tasks, OperationTaskModel{
			Detail:        task.Detail,
			Kind:          task.Kind,
			OK:            task.OK,
			OperationID:   op.OperationID,
			Position:      i,
			PullRequestID: task.PullRequestID,
		})
	}

	return model, items, tasks
}

// modelsToOperation rebuilds a domain.Operation from archive rows. Item and
// task slices must already be ordered by position.
func modelsToOperation(m OperationModel, items []OperationItemModel, tasks []OperationTaskModel) domain.Operation {
	op := domain.Operation{
		BaseRepoPath:        m.BaseRepoPath,
		CompletedAt:         m.CompletedAt,
		CreatedAt:           m.StartedAt,
		CurrentIndex:        m.CurrentIndex,
		FinalStatus:         m.FinalStatus,
		HooksEnabled:        m.HooksEnabled,
		IsAuxiliaryCheckout: m.IsAuxiliaryCheckout,
		MainlineParent:      m.MainlineParent,
		OperationID:         m.OperationID,
		Organization:        m.Organization,
		Phase:               domain.Phase(m.Phase),
		Project:             m.Project,
		ReleaseName:         m.ReleaseName,
		RepoPath:            m.RepoPath,
		Repository:          m.Repository,
		SchemaVersion:       m.SchemaVersion,
		SourceBranch:        m.SourceBranch,
		TargetBranch:        m.TargetBranch,
		UpdatedAt:           m.UpdatedAt,
		WorkTreePath:        m.WorkTreePath,
	}

	for _, item := range items {
		op.Items = append(op.Items, domain.Item{
			FailureReason: item.FailureReason,
			MergeCommit:   item.MergeCommit,
			PullRequestID: item.PullRequestID,
			Status:        domain.ItemStatus(item.Status),
			Title:         item.Title,
			WorkItemIDs:   splitWorkItemIDs(item.WorkItemIDs),
		})
	}

	for _, task := range tasks {
		op.PostTasks = append(op.PostTasks, domain.PostTask{
			Detail:        task.Detail,
			Kind:          task.Kind,
			OK:            task.OK,
			PullRequestID: task.PullRequestID,
		})
	}

	return op
}

func joinWorkItemIDs(ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func splitWorkItemIDs(joined string) []int {
	if joined == "" {
		return nil
	}
	var ids []int
	for _, part := range strings.Split(joined, ",") {
		if id, err := strconv.Atoi(part); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
