package patient

// Patient is a resident in the care facility whose medication supply is
// tracked. Identifiers are assigned by the store and never chosen by callers.
type Patient struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Room string `json:"room"`
}
