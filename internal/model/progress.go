package model

import "time"

// DateLayout is the calendar date format shared with the backend.
const DateLayout = "2006-01-02"

// ExerciseLog is a single logged exercise.
type ExerciseLog struct {
	ID           string  `json:"_id,omitempty"`
	ExerciseName string  `json:"exerciseName"`
	Weight       float64 `json:"weight,omitempty"`
	Reps         int     `json:"reps,omitempty"`
	Sets         int     `json:"sets,omitempty"`
	OneRepMax    float64 `json:"oneRepMax,omitempty"`
	Date         string  `json:"date"`
	Notes        string  `json:"notes,omitempty"`
}

// Day returns the calendar date part of Date.
func (l ExerciseLog) Day() string {
	if len(l.Date) >= len(DateLayout) {
		return l.Date[:len(DateLayout)]
	}
	return l.Date
}

type LogResult struct {
	IsNewPR bool            `json:"isNewPR"`
	PR      *PersonalRecord `json:"pr"`
}

type PersonalRecord struct {
	ExerciseName string  `json:"exerciseName"`
	PR           float64 `json:"pr"`
	LastUpdated  string  `json:"lastUpdated,omitempty"`
}

type Metric struct {
	ID     string    `json:"_id,omitempty"`
	Weight float64   `json:"weight"`
	Notes  string    `json:"notes,omitempty"`
	Date   time.Time `json:"date"`
}

// WorkoutLog is a completed session.
type WorkoutLog struct {
	ID          string            `json:"_id,omitempty"`
	Date        string            `json:"date,omitempty"`
	WorkoutDate string            `json:"workoutDate,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	Duration    int               `json:"duration,omitempty"`
	Completed   bool              `json:"completed,omitempty"`
	Exercises   []WorkoutLogEntry `json:"exercises"`
}

// Day returns the calendar date of the session. Stored logs carry
// workoutDate; new ones are sent with date.
func (l WorkoutLog) Day() string {
	d := l.WorkoutDate
	if d == "" {
		d = l.Date
	}
	if len(d) >= len(DateLayout) {
		return d[:len(DateLayout)]
	}
	return d
}

type WorkoutLogEntry struct {
	ExerciseName string  `json:"exerciseName"`
	Sets         int     `json:"sets,omitempty"`
	Reps         int     `json:"reps,omitempty"`
	Weight       float64 `json:"weight,omitempty"`
	Completed    bool    `json:"completed"`
	Notes        string  `json:"notes,omitempty"`
}

type Streaks struct {
	CurrentStreak   int    `json:"currentStreak"`
	LongestStreak   int    `json:"longestStreak"`
	DaysCount       int    `json:"daysCount"`
	StreakStartDate string `json:"streakStartDate,omitempty"`
	StreakEndDate   string `json:"streakEndDate,omitempty"`
}

type DateLogs struct {
	Date string        `json:"date"`
	Logs []ExerciseLog `json:"logs,omitempty"`
}

type ProgressSummary struct {
	PRs        []PersonalRecord `json:"prs"`
	TodaysLogs []ExerciseLog    `json:"todaysLogs"`
	Streaks    Streaks          `json:"streaks"`
	LogsByDate []DateLogs       `json:"logsByDate"`
}

type Stats struct {
	CurrentWeight    float64 `json:"currentWeight"`
	TotalWorkouts    int     `json:"totalWorkouts"`
	TotalPRs         int     `json:"totalPRs"`
	WorkoutsThisWeek int     `json:"workoutsThisWeek"`
	RecentWorkouts   int     `json:"recentWorkouts"`
}

type LeaderboardEntry struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps,omitempty"`
	Date   string  `json:"date,omitempty"`
}

// CalendarDay is one cell of the progress calendar.
type CalendarDay struct {
	Date         string
	Weekday      string
	DayOfMonth   int
	IsToday      bool
	IsWorkoutDay bool
}
