package usecase

import (
	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/response"

	"github.com/google/uuid"
)

// BuildReviewThread projects a movie's reviews into a forest. Roots are
// reviews without a parent; children keep the order of the input slice.
// Each review is emitted at most once, so reviews on a parent cycle or
// pointing at a review outside the input never reach the output.
func BuildReviewThread(reviews []*entity.Review) []*response.ReviewNode {
	children := make(map[uuid.UUID][]*entity.Review, len(reviews))
	var roots []*entity.Review

	for _, review := range reviews {
		if review.ParentID == nil {
			roots = append(roots, review)
			continue
		}
		children[*review.ParentID] = append(children[*review.ParentID], review)
	}

	visited := make(map[uuid.UUID]bool, len(reviews))

	var project func(review *entity.Review) *response.ReviewNode
	project = func(review *entity.Review) *response.ReviewNode {
		visited[review.ID] = true

		node := &response.ReviewNode{
			ID:       review.ID.String(),
			Name:     review.Name,
			Text:     review.Text,
			Children: []*response.ReviewNode{},
		}
		for _, child := range children[review.ID] {
			if visited[child.ID] {
				continue
			}
			node.Children = append(node.Children, project(child))
		}
		return node
	}

	thread := make([]*response.ReviewNode, 0, len(roots))
	for _, root := range roots {
		if visited[root.ID] {
			continue
		}
		thread = append(thread, project(root))
	}

	return thread
}
