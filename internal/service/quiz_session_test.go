package service

import "testing"

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewQuizSessionStore()

	if _, _, ok := store.Get(1, 2); ok {
		t.Fatal("empty store should not return a session")
	}

	queue := QuizQueue{{ID: 1}, {ID: 2}}
	store.Put(1, 2, queue, 5)

	got, correct, ok := store.Get(1, 2)
	if !ok {
		t.Fatal("session not found after Put")
	}
	if len(got) != 2 || correct != 5 {
		t.Fatalf("got queue=%v correct=%d", got, correct)
	}

	store.Delete(1, 2)
	if _, _, ok := store.Get(1, 2); ok {
		t.Fatal("session still present after Delete")
	}
}

func TestSessionStoreKeysAreIndependent(t *testing.T) {
	store := NewQuizSessionStore()
	store.Put(1, 2, QuizQueue{{ID: 1}}, 1)
	store.Put(2, 1, QuizQueue{{ID: 9}, {ID: 8}}, 0)

	q1, c1, _ := store.Get(1, 2)
	q2, c2, _ := store.Get(2, 1)
	if len(q1) != 1 || c1 != 1 {
		t.Fatalf("session (1,2) = %v/%d", q1, c1)
	}
	if len(q2) != 2 || c2 != 0 {
		t.Fatalf("session (2,1) = %v/%d", q2, c2)
	}

	store.Delete(1, 2)
	if _, _, ok := store.Get(2, 1); !ok {
		t.Fatal("deleting one key removed another")
	}
}

func TestSessionStorePutOverwrites(t *testing.T) {
	store := NewQuizSessionStore()
	store.Put(1, 1, QuizQueue{{ID: 1}, {ID: 2}, {ID: 3}}, 2)
	store.Put(1, 1, QuizQueue{{ID: 4}}, 0)

	queue, correct, _ := store.Get(1, 1)
	if len(queue) != 1 || queue[0].ID != 4 || correct != 0 {
		t.Fatalf("overwrite failed: queue=%v correct=%d", queue, correct)
	}
}
