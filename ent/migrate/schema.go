// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementUnlocksColumns holds the columns for the "achievement_unlocks" table.
	AchievementUnlocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "achievement_id", Type: field.TypeString},
		{Name: "unlocked_at", Type: field.TypeTime},
	}
	// AchievementUnlocksTable holds the schema information for the "achievement_unlocks" table.
	AchievementUnlocksTable = &schema.Table{
		Name:       "achievement_unlocks",
		Columns:    AchievementUnlocksColumns,
		PrimaryKey: []*schema.Column{AchievementUnlocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievementunlock_user_id_achievement_id",
				Unique:  true,
				Columns: []*schema.Column{AchievementUnlocksColumns[1], AchievementUnlocksColumns[2]},
			},
			{
				Name:    "achievementunlock_user_id",
				Unique:  false,
				Columns: []*schema.Column{AchievementUnlocksColumns[1]},
			},
		},
	}
	// CompetenceRecordsColumns holds the columns for the "competence_records" table.
	CompetenceRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "mastery", Type: field.TypeInt, Default: 0},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CompetenceRecordsTable holds the schema information for the "competence_records" table.
	CompetenceRecordsTable = &schema.Table{
		Name:       "competence_records",
		Columns:    CompetenceRecordsColumns,
		PrimaryKey: []*schema.Column{CompetenceRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "competencerecord_user_id_skill_id",
				Unique:  true,
				Columns: []*schema.Column{CompetenceRecordsColumns[1], CompetenceRecordsColumns[2]},
			},
			{
				Name:    "competencerecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{CompetenceRecordsColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: "unknown"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_message", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuizProgressionsColumns holds the columns for the "quiz_progressions" table.
	QuizProgressionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"generated", "presented"}, Default: "generated"},
		{Name: "generated_at", Type: field.TypeTime},
		{Name: "quizzes", Type: field.TypeJSON},
		{Name: "rationale", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "celebration_title", Type: field.TypeString, Default: ""},
		{Name: "celebration_message", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "motivational_quote", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// QuizProgressionsTable holds the schema information for the "quiz_progressions" table.
	QuizProgressionsTable = &schema.Table{
		Name:       "quiz_progressions",
		Columns:    QuizProgressionsColumns,
		PrimaryKey: []*schema.Column{QuizProgressionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizprogression_user_id_skill_id",
				Unique:  true,
				Columns: []*schema.Column{QuizProgressionsColumns[1], QuizProgressionsColumns[2]},
			},
			{
				Name:    "quizprogression_user_id_generated_at",
				Unique:  false,
				Columns: []*schema.Column{QuizProgressionsColumns[1], QuizProgressionsColumns[4]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "questions_answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "points", Type: field.TypeInt, Default: 0},
		{Name: "best_streak", Type: field.TypeInt, Default: 0},
		{Name: "completion_reached", Type: field.TypeBool, Default: false},
		{Name: "prereq_gap", Type: field.TypeBool, Default: false},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// UserProfilesColumns holds the columns for the "user_profiles" table.
	UserProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "total_points", Type: field.TypeInt, Default: 0},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "learning_style", Type: field.TypeString, Default: ""},
		{Name: "favorite_topics", Type: field.TypeJSON, Nullable: true},
		{Name: "language", Type: field.TypeString, Default: ""},
	}
	// UserProfilesTable holds the schema information for the "user_profiles" table.
	UserProfilesTable = &schema.Table{
		Name:       "user_profiles",
		Columns:    UserProfilesColumns,
		PrimaryKey: []*schema.Column{UserProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userprofile_user_id",
				Unique:  true,
				Columns: []*schema.Column{UserProfilesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementUnlocksTable,
		CompetenceRecordsTable,
		LlmRequestEventsTable,
		QuizProgressionsTable,
		SessionEventsTable,
		UserProfilesTable,
	}
)

func init() {
}
