// Code generated by ent, DO NOT EDIT.

package quizprogression

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEQ(FieldUserID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEQ(FieldSkillID, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEQ(FieldGeneratedAt, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEQ(FieldRationale, v))
}

// CelebrationTitle applies equality check predicate on the "celebration_title" field. It's identical to CelebrationTitleEQ.
func CelebrationTitle(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEQ(FieldCelebrationTitle, v))
}

// CelebrationMessage applies equality check predicate on the "celebration_message" field. It's identical to CelebrationMessageEQ.
func CelebrationMessage(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEQ(FieldCelebrationMessage, v))
}

// MotivationalQuote applies equality check predicate on the "motivational_quote" field. It's identical to MotivationalQuoteEQ.
func MotivationalQuote(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEQ(FieldMotivationalQuote, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldContainsFold(FieldUserID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldContainsFold(FieldSkillID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldNotIn(FieldStatus, vs...))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldLTE(FieldGeneratedAt, v))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldContainsFold(FieldRationale, v))
}

// CelebrationTitleEQ applies the EQ predicate on the "celebration_title" field.
func CelebrationTitleEQ(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEQ(FieldCelebrationTitle, v))
}

// CelebrationTitleNEQ applies the NEQ predicate on the "celebration_title" field.
func CelebrationTitleNEQ(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldNEQ(FieldCelebrationTitle, v))
}

// CelebrationTitleIn applies the In predicate on the "celebration_title" field.
func CelebrationTitleIn(vs ...string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldIn(FieldCelebrationTitle, vs...))
}

// CelebrationTitleNotIn applies the NotIn predicate on the "celebration_title" field.
func CelebrationTitleNotIn(vs ...string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldNotIn(FieldCelebrationTitle, vs...))
}

// CelebrationTitleGT applies the GT predicate on the "celebration_title" field.
func CelebrationTitleGT(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldGT(FieldCelebrationTitle, v))
}

// CelebrationTitleGTE applies the GTE predicate on the "celebration_title" field.
func CelebrationTitleGTE(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldGTE(FieldCelebrationTitle, v))
}

// CelebrationTitleLT applies the LT predicate on the "celebration_title" field.
func CelebrationTitleLT(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldLT(FieldCelebrationTitle, v))
}

// CelebrationTitleLTE applies the LTE predicate on the "celebration_title" field.
func CelebrationTitleLTE(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldLTE(FieldCelebrationTitle, v))
}

// CelebrationTitleContains applies the Contains predicate on the "celebration_title" field.
func CelebrationTitleContains(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldContains(FieldCelebrationTitle, v))
}

// CelebrationTitleHasPrefix applies the HasPrefix predicate on the "celebration_title" field.
func CelebrationTitleHasPrefix(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldHasPrefix(FieldCelebrationTitle, v))
}

// CelebrationTitleHasSuffix applies the HasSuffix predicate on the "celebration_title" field.
func CelebrationTitleHasSuffix(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldHasSuffix(FieldCelebrationTitle, v))
}

// CelebrationTitleEqualFold applies the EqualFold predicate on the "celebration_title" field.
func CelebrationTitleEqualFold(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEqualFold(FieldCelebrationTitle, v))
}

// CelebrationTitleContainsFold applies the ContainsFold predicate on the "celebration_title" field.
func CelebrationTitleContainsFold(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldContainsFold(FieldCelebrationTitle, v))
}

// CelebrationMessageEQ applies the EQ predicate on the "celebration_message" field.
func CelebrationMessageEQ(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEQ(FieldCelebrationMessage, v))
}

// CelebrationMessageNEQ applies the NEQ predicate on the "celebration_message" field.
func CelebrationMessageNEQ(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldNEQ(FieldCelebrationMessage, v))
}

// CelebrationMessageIn applies the In predicate on the "celebration_message" field.
func CelebrationMessageIn(vs ...string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldIn(FieldCelebrationMessage, vs...))
}

// CelebrationMessageNotIn applies the NotIn predicate on the "celebration_message" field.
func CelebrationMessageNotIn(vs ...string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldNotIn(FieldCelebrationMessage, vs...))
}

// CelebrationMessageGT applies the GT predicate on the "celebration_message" field.
func CelebrationMessageGT(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldGT(FieldCelebrationMessage, v))
}

// CelebrationMessageGTE applies the GTE predicate on the "celebration_message" field.
func CelebrationMessageGTE(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldGTE(FieldCelebrationMessage, v))
}

// CelebrationMessageLT applies the LT predicate on the "celebration_message" field.
func CelebrationMessageLT(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldLT(FieldCelebrationMessage, v))
}

// CelebrationMessageLTE applies the LTE predicate on the "celebration_message" field.
func CelebrationMessageLTE(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldLTE(FieldCelebrationMessage, v))
}

// CelebrationMessageContains applies the Contains predicate on the "celebration_message" field.
func CelebrationMessageContains(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldContains(FieldCelebrationMessage, v))
}

// CelebrationMessageHasPrefix applies the HasPrefix predicate on the "celebration_message" field.
func CelebrationMessageHasPrefix(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldHasPrefix(FieldCelebrationMessage, v))
}

// CelebrationMessageHasSuffix applies the HasSuffix predicate on the "celebration_message" field.
func CelebrationMessageHasSuffix(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldHasSuffix(FieldCelebrationMessage, v))
}

// CelebrationMessageEqualFold applies the EqualFold predicate on the "celebration_message" field.
func CelebrationMessageEqualFold(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEqualFold(FieldCelebrationMessage, v))
}

// CelebrationMessageContainsFold applies the ContainsFold predicate on the "celebration_message" field.
func CelebrationMessageContainsFold(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldContainsFold(FieldCelebrationMessage, v))
}

// MotivationalQuoteEQ applies the EQ predicate on the "motivational_quote" field.
func MotivationalQuoteEQ(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEQ(FieldMotivationalQuote, v))
}

// MotivationalQuoteNEQ applies the NEQ predicate on the "motivational_quote" field.
func MotivationalQuoteNEQ(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldNEQ(FieldMotivationalQuote, v))
}

// MotivationalQuoteIn applies the In predicate on the "motivational_quote" field.
func MotivationalQuoteIn(vs ...string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldIn(FieldMotivationalQuote, vs...))
}

// MotivationalQuoteNotIn applies the NotIn predicate on the "motivational_quote" field.
func MotivationalQuoteNotIn(vs ...string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldNotIn(FieldMotivationalQuote, vs...))
}

// MotivationalQuoteGT applies the GT predicate on the "motivational_quote" field.
func MotivationalQuoteGT(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldGT(FieldMotivationalQuote, v))
}

// MotivationalQuoteGTE applies the GTE predicate on the "motivational_quote" field.
func MotivationalQuoteGTE(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldGTE(FieldMotivationalQuote, v))
}

// MotivationalQuoteLT applies the LT predicate on the "motivational_quote" field.
func MotivationalQuoteLT(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldLT(FieldMotivationalQuote, v))
}

// MotivationalQuoteLTE applies the LTE predicate on the "motivational_quote" field.
func MotivationalQuoteLTE(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldLTE(FieldMotivationalQuote, v))
}

// MotivationalQuoteContains applies the Contains predicate on the "motivational_quote" field.
func MotivationalQuoteContains(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldContains(FieldMotivationalQuote, v))
}

// MotivationalQuoteHasPrefix applies the HasPrefix predicate on the "motivational_quote" field.
func MotivationalQuoteHasPrefix(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldHasPrefix(FieldMotivationalQuote, v))
}

// MotivationalQuoteHasSuffix applies the HasSuffix predicate on the "motivational_quote" field.
func MotivationalQuoteHasSuffix(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldHasSuffix(FieldMotivationalQuote, v))
}

// MotivationalQuoteEqualFold applies the EqualFold predicate on the "motivational_quote" field.
func MotivationalQuoteEqualFold(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldEqualFold(FieldMotivationalQuote, v))
}

// MotivationalQuoteContainsFold applies the ContainsFold predicate on the "motivational_quote" field.
func MotivationalQuoteContainsFold(v string) predicate.QuizProgression {
	return predicate.QuizProgression(sql.FieldContainsFold(FieldMotivationalQuote, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizProgression) predicate.QuizProgression {
	return predicate.QuizProgression(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizProgression) predicate.QuizProgression {
	return predicate.QuizProgression(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizProgression) predicate.QuizProgression {
	return predicate.QuizProgression(sql.NotPredicates(p))
}
