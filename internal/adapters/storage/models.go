package storage

import "time"

// OperationModel is the GORM model for archived operations
type OperationModel struct {
	BaseRepoPath        string `gorm:"default:''"`
	CompletedAt         *time.Time
	CreatedAt           time.Time
	CurrentIndex        int    `gorm:"not null;default:0"`
	FinalStatus         string `gorm:"not null;check:final_status IN ('aborted','completed','completed_with_errors')"`
	HooksEnabled        bool   `gorm:"not null;default:true"`
	IsAuxiliaryCheckout bool   `gorm:"not null;default:false"`
	MainlineParent      int    `gorm:"not null;default:1"`
	OperationID         string `gorm:"primaryKey"`
	Organization        string `gorm:"default:''"`
	Phase               string `gorm:"not null"`
	Project             string `gorm:"default:''"`
	ReleaseName         string `gorm:"not null;index:idx_release_name"`
	RepoPath            string `gorm:"not null;index:idx_repo_path"`
	Repository          string `gorm:"default:''"`
	SchemaVersion       int    `gorm:"not null;default:1"`
	SourceBranch        string `gorm:"not null;default:''"`
	StartedAt           time.Time
	TargetBranch        string `gorm:"not null;default:''"`
	UpdatedAt           time.Time
	WorkTreePath        string `gorm:"default:''"`
}

// TableName specifies the table name for GORM
func (OperationModel) TableName() string { return "operations" }

// OperationItemModel is the GORM model for the per-pull-request results of
// an archived operation
type OperationItemModel struct {
	CreatedAt     time.Time
	FailureReason string `gorm:"default:''"`
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	MergeCommit   string `gorm:"default:''"`
	OperationID   string `gorm:"not null;index:idx_item_operation"`
	Position      int    `gorm:"not null;default:0"`
	PullRequestID int64  `gorm:"not null;default:0"`
	Status        string `gorm:"not null;check:status IN ('pending','applied','conflict','failed','skipped')"`
	Title         string `gorm:"default:''"`
	UpdatedAt     time.Time
	WorkItemIDs   string `gorm:"default:''"`
}

// TableName specifies the table name for GORM
func (OperationItemModel) TableName() string { return "operation_items" }

// OperationTaskModel is the GORM model for post-completion task results
type OperationTaskModel struct {
	CreatedAt     time.Time
	Detail        string `gorm:"default:''"`
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	Kind          string `gorm:"not null"`
	OK            bool   `gorm:"not null;default:false"`
	OperationID   string `gorm:"not null;index:idx_task_operation"`
	Position      int    `gorm:"not null;default:0"`
	PullRequestID int64  `gorm:"not null;default:0"`
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (OperationTaskModel) TableName() string { return "operation_tasks" }
