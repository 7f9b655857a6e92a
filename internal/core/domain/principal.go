package domain

// Principal is the authenticated owner on whose behalf an operation runs.
// Every read and mutation is scoped to Principal.ID.
type Principal struct {
	ID     string
	Source string // jwt, header, cli
}
