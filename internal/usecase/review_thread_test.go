package usecase

import (
	"testing"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func review(name string, parent *entity.Review) *entity.Review {
	r := &entity.Review{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		Name:       name,
		Text:       name + " text",
	}
	if parent != nil {
		r.ParentID = &parent.ID
	}
	return r
}

func names(nodes []*response.ReviewNode) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name)
	}
	return out
}

func TestBuildReviewThread_NestsRepliesUnderParent(t *testing.T) {
	r1 := review("R1", nil)
	r2 := review("R2", r1)
	r3 := review("R3", nil)

	thread := BuildReviewThread([]*entity.Review{r1, r2, r3})

	require.Len(t, thread, 2)
	assert.Equal(t, []string{"R1", "R3"}, names(thread))
	assert.Equal(t, r1.ID.String(), thread[0].ID)
	assert.Equal(t, "R1 text", thread[0].Text)

	require.Len(t, thread[0].Children, 1)
	assert.Equal(t, "R2", thread[0].Children[0].Name)
	assert.Empty(t, thread[0].Children[0].Children)
	assert.NotNil(t, thread[0].Children[0].Children, "leaf children must serialize as []")
	assert.Empty(t, thread[1].Children)
}

func TestBuildReviewThread_KeepsInputOrder(t *testing.T) {
	root := review("root", nil)
	a := review("a", root)
	b := review("b", root)
	c := review("c", root)
	deep := review("deep", b)

	thread := BuildReviewThread([]*entity.Review{root, c, a, deep, b})

	require.Len(t, thread, 1)
	assert.Equal(t, []string{"c", "a", "b"}, names(thread[0].Children))
	assert.Equal(t, []string{"deep"}, names(thread[0].Children[2].Children))
}

func TestBuildReviewThread_Empty(t *testing.T) {
	thread := BuildReviewThread(nil)

	assert.NotNil(t, thread)
	assert.Empty(t, thread)
}

func TestBuildReviewThread_DropsCyclesAndOrphans(t *testing.T) {
	root := review("root", nil)

	// x and y point at each other, neither is reachable from a root
	x := review("x", nil)
	y := review("y", x)
	x.ParentID = &y.ID

	missing := uuid.New()
	orphan := review("orphan", nil)
	orphan.ParentID = &missing

	thread := BuildReviewThread([]*entity.Review{root, x, y, orphan})

	require.Len(t, thread, 1)
	assert.Equal(t, "root", thread[0].Name)
	assert.Empty(t, thread[0].Children)
}

func TestBuildReviewThread_SelfParentIsNotEmitted(t *testing.T) {
	self := review("self", nil)
	self.ParentID = &self.ID

	assert.Empty(t, BuildReviewThread([]*entity.Review{self}))
}
