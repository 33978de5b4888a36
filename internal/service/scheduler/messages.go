package scheduler

// Тексты уведомлений
const (
	MsgSlotReserved = "That slot is already reserved."
	MsgMissingName  = "Please add a name."
	MsgWrongPhone   = "Wrong number"
)

func msgReserved(label string) string {
	return "Reserved " + label + ". Email draft opened."
}
