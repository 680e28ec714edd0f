package domain

// RowRenderer turns a Result into the markup fragment stored in a session.
type RowRenderer interface {
	Row(result Result) string
}
