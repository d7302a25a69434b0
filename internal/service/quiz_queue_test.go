package service

import (
	"errors"
	"testing"

	"course_hub_backend/internal/model"
	"course_hub_backend/internal/util"
)

func makeRefs(n int) []QuestionRef {
	refs := make([]QuestionRef, n)
	for i := range refs {
		refs[i] = QuestionRef{ID: uint(i + 1), Kind: model.QuestionMCQ}
	}
	return refs
}

func TestNewQuizQueueEmpty(t *testing.T) {
	_, err := NewQuizQueue(nil)
	if !errors.Is(err, util.ErrEmptyCourse) {
		t.Fatalf("expected ErrEmptyCourse, got %v", err)
	}
}

func TestNewQuizQueueIsPermutation(t *testing.T) {
	refs := makeRefs(10)
	queue, err := NewQuizQueue(refs)
	if err != nil {
		t.Fatal(err)
	}
	if len(queue) != len(refs) {
		t.Fatalf("queue length = %d, want %d", len(queue), len(refs))
	}

	seen := make(map[uint]int)
	for _, q := range queue {
		seen[q.ID]++
	}
	for _, r := range refs {
		if seen[r.ID] != 1 {
			t.Fatalf("question %d appears %d times", r.ID, seen[r.ID])
		}
	}
}

func TestNewQuizQueueDoesNotMutateInput(t *testing.T) {
	refs := makeRefs(8)
	original := make([]QuestionRef, len(refs))
	copy(original, refs)

	for i := 0; i < 20; i++ {
		if _, err := NewQuizQueue(refs); err != nil {
			t.Fatal(err)
		}
	}
	for i := range refs {
		if refs[i] != original[i] {
			t.Fatal("input slice was mutated by shuffle")
		}
	}
}

func TestNewQuizQueueShuffles(t *testing.T) {
	refs := makeRefs(8)
	orders := make(map[[8]uint]bool)
	for i := 0; i < 50; i++ {
		queue, err := NewQuizQueue(refs)
		if err != nil {
			t.Fatal(err)
		}
		var key [8]uint
		for j, q := range queue {
			key[j] = q.ID
		}
		orders[key] = true
	}
	// 50 次洗牌全部得到同一顺序的概率可以忽略不计
	if len(orders) < 2 {
		t.Fatal("expected at least two distinct orders across shuffles")
	}
}

func TestDequeueAndRequeue(t *testing.T) {
	queue := QuizQueue{{ID: 1}, {ID: 2}, {ID: 3}}

	head, rest, err := queue.Dequeue()
	if err != nil {
		t.Fatal(err)
	}
	if head.ID != 1 {
		t.Fatalf("head = %d, want 1", head.ID)
	}
	if len(rest) != 2 {
		t.Fatalf("rest length = %d, want 2", len(rest))
	}

	requeued := rest.Requeue(head)
	if len(requeued) != 3 {
		t.Fatalf("requeued length = %d, want 3", len(requeued))
	}
	if requeued[2].ID != 1 {
		t.Fatalf("tail = %d, want 1", requeued[2].ID)
	}
	// 答错的题目要等其余在队题目都先出现一次
	if requeued[0].ID != 2 || requeued[1].ID != 3 {
		t.Fatalf("unexpected order %v", requeued)
	}
}

func TestRequeueDoesNotMutateReceiver(t *testing.T) {
	base := QuizQueue{{ID: 1}, {ID: 2}}
	first := base.Requeue(QuestionRef{ID: 3})
	second := base.Requeue(QuestionRef{ID: 4})

	if first[2].ID != 3 || second[2].ID != 4 {
		t.Fatalf("requeue results interfered: %v %v", first, second)
	}
	if len(base) != 2 {
		t.Fatalf("receiver length changed to %d", len(base))
	}
}

func TestIncorrectAnswersPreserveLength(t *testing.T) {
	queue := QuizQueue{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}

	for i := 0; i < 10; i++ {
		head, rest, err := queue.Dequeue()
		if err != nil {
			t.Fatal(err)
		}
		queue = rest.Requeue(head)
		if len(queue) != 4 {
			t.Fatalf("length changed to %d after %d incorrect answers", len(queue), i+1)
		}
		if queue.IsTerminal() {
			t.Fatal("queue became terminal while questions remain")
		}
	}
}

func TestSingleQuestionRequeuesToItself(t *testing.T) {
	queue := QuizQueue{{ID: 7}}

	head, rest, err := queue.Dequeue()
	if err != nil {
		t.Fatal(err)
	}
	queue = rest.Requeue(head)

	next, _, err := queue.Dequeue()
	if err != nil {
		t.Fatal(err)
	}
	if next.ID != 7 {
		t.Fatalf("next = %d, want the same question back", next.ID)
	}
}

func TestDequeueExhausted(t *testing.T) {
	queue := QuizQueue{{ID: 1}}
	_, rest, err := queue.Dequeue()
	if err != nil {
		t.Fatal(err)
	}
	if !rest.IsTerminal() {
		t.Fatal("queue should be terminal after draining")
	}
	if _, _, err := rest.Dequeue(); !errors.Is(err, util.ErrQueueExhausted) {
		t.Fatalf("expected ErrQueueExhausted, got %v", err)
	}
}
