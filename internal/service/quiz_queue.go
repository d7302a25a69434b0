package service

import (
	"math/rand"

	"course_hub_backend/internal/model"
	"course_hub_backend/internal/util"
)

// QuestionRef 队列中引用的题目，只携带 ID 和题型
type QuestionRef struct {
	ID   uint               `json:"id"`
	Kind model.QuestionKind `json:"kind"`
}

// QuizQueue 当前测验会话剩余题目的有序队列。
// 答错的题目回到队尾，队列为空即本轮测验结束。
type QuizQueue []QuestionRef

// NewQuizQueue 用 Fisher-Yates 均匀打乱课程题目生成新队列
func NewQuizQueue(questions []QuestionRef) (QuizQueue, error) {
	if len(questions) == 0 {
		return nil, util.ErrEmptyCourse
	}
	queue := make(QuizQueue, len(questions))
	copy(queue, questions)
	rand.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})
	return queue, nil
}

// Dequeue 取出队首题目，返回剩余队列
func (q QuizQueue) Dequeue() (QuestionRef, QuizQueue, error) {
	if len(q) == 0 {
		return QuestionRef{}, q, util.ErrQueueExhausted
	}
	return q[0], q[1:], nil
}

// Requeue 把答错的题目追加到队尾：其余在队题目都会先各出现一次。
// 队列只剩一题时答错会立刻再次轮到同一题，这是预期行为。
func (q QuizQueue) Requeue(question QuestionRef) QuizQueue {
	out := make(QuizQueue, 0, len(q)+1)
	out = append(out, q...)
	return append(out, question)
}

// IsTerminal 队列为空即测验结束
func (q QuizQueue) IsTerminal() bool {
	return len(q) == 0
}
