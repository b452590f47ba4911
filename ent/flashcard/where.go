// Code generated by ent, DO NOT EDIT.

package flashcard

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/chilltutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldID, id))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldTopicID, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldQuestion, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldAnswer, v))
}

// MarkingCriteria applies equality check predicate on the "marking_criteria" field. It's identical to MarkingCriteriaEQ.
func MarkingCriteria(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldMarkingCriteria, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldTopicID, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContainsFold(FieldQuestion, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContainsFold(FieldAnswer, v))
}

// MarkingCriteriaEQ applies the EQ predicate on the "marking_criteria" field.
func MarkingCriteriaEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldMarkingCriteria, v))
}

// MarkingCriteriaNEQ applies the NEQ predicate on the "marking_criteria" field.
func MarkingCriteriaNEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldMarkingCriteria, v))
}

// MarkingCriteriaIn applies the In predicate on the "marking_criteria" field.
func MarkingCriteriaIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldMarkingCriteria, vs...))
}

// MarkingCriteriaNotIn applies the NotIn predicate on the "marking_criteria" field.
func MarkingCriteriaNotIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldMarkingCriteria, vs...))
}

// MarkingCriteriaGT applies the GT predicate on the "marking_criteria" field.
func MarkingCriteriaGT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldMarkingCriteria, v))
}

// MarkingCriteriaGTE applies the GTE predicate on the "marking_criteria" field.
func MarkingCriteriaGTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldMarkingCriteria, v))
}

// MarkingCriteriaLT applies the LT predicate on the "marking_criteria" field.
func MarkingCriteriaLT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldMarkingCriteria, v))
}

// MarkingCriteriaLTE applies the LTE predicate on the "marking_criteria" field.
func MarkingCriteriaLTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldMarkingCriteria, v))
}

// MarkingCriteriaContains applies the Contains predicate on the "marking_criteria" field.
func MarkingCriteriaContains(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContains(FieldMarkingCriteria, v))
}

// MarkingCriteriaHasPrefix applies the HasPrefix predicate on the "marking_criteria" field.
func MarkingCriteriaHasPrefix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasPrefix(FieldMarkingCriteria, v))
}

// MarkingCriteriaHasSuffix applies the HasSuffix predicate on the "marking_criteria" field.
func MarkingCriteriaHasSuffix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasSuffix(FieldMarkingCriteria, v))
}

// MarkingCriteriaEqualFold applies the EqualFold predicate on the "marking_criteria" field.
func MarkingCriteriaEqualFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEqualFold(FieldMarkingCriteria, v))
}

// MarkingCriteriaContainsFold applies the ContainsFold predicate on the "marking_criteria" field.
func MarkingCriteriaContainsFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContainsFold(FieldMarkingCriteria, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Flashcard) predicate.Flashcard {
	return predicate.Flashcard(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Flashcard) predicate.Flashcard {
	return predicate.Flashcard(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Flashcard) predicate.Flashcard {
	return predicate.Flashcard(sql.NotPredicates(p))
}
