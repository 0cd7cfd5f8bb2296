package services

import "github.com/kanbanhq/backend/internal/models"

// The permission layer is a set of pure predicates over loaded entities.
// Callers must load the board with its member set (and tasks with their
// board) before evaluating. The owner is never stored in the member set but
// always counts as a member here.

// IsBoardMember reports whether the user is the board owner or in its member set.
func IsBoardMember(userID uint, board *models.Board) bool {
	if board == nil {
		return false
	}
	if board.OwnerID == userID {
		return true
	}
	for _, m := range board.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// CanViewBoard reports whether the user may read the board and its contents.
func CanViewBoard(userID uint, board *models.Board) bool {
	return IsBoardMember(userID, board)
}

// CanModifyBoard reports whether the user may edit or delete the board.
// Only the owner can.
func CanModifyBoard(userID uint, board *models.Board) bool {
	return board != nil && board.OwnerID == userID
}

// CanCreateTaskOn reports whether the user may create tasks on the board.
func CanCreateTaskOn(userID uint, board *models.Board) bool {
	return IsBoardMember(userID, board)
}

// CanModifyTask reports whether the user may edit the task's general fields,
// including reassignment. task.Board must be loaded.
func CanModifyTask(userID uint, task *models.Task) bool {
	return task != nil && IsBoardMember(userID, task.Board)
}

// CanDeleteTask reports whether the user may delete the task. Strictly
// stricter than CanModifyTask: only the board owner can.
func CanDeleteTask(userID uint, task *models.Task) bool {
	return task != nil && task.Board != nil && task.Board.OwnerID == userID
}

// CanCreateCommentOn reports whether the user may read or add comments on the task.
func CanCreateCommentOn(userID uint, task *models.Task) bool {
	return task != nil && IsBoardMember(userID, task.Board)
}

// CanModifyComment reports whether the user may edit the comment. Author only;
// not even the board owner may touch another member's comment.
func CanModifyComment(userID uint, comment *models.Comment) bool {
	return comment != nil && comment.AuthorID == userID
}

// CanDeleteComment reports whether the user may delete the comment.
func CanDeleteComment(userID uint, comment *models.Comment) bool {
	return CanModifyComment(userID, comment)
}

// IsValidAssignee reports whether the referenced user may be set as assignee
// or reviewer on a task of the board. Checked at assignment time only;
// existing references are not re-validated when membership changes later.
func IsValidAssignee(userID uint, board *models.Board) bool {
	return IsBoardMember(userID, board)
}
