package tasks

type Column struct {
	Status Status `json:"status"`
	Tasks  []Task `json:"tasks"`
}

// GroupByStatus splits tasks into one column per status in board order.
// List order is kept inside a column; every column is present, even empty.
func GroupByStatus(list []Task) []Column {
	cols := make([]Column, len(AllStatuses))
	idx := make(map[Status]int, len(AllStatuses))
	for i, st := range AllStatuses {
		cols[i] = Column{Status: st, Tasks: []Task{}}
		idx[st] = i
	}
	for _, t := range list {
		if i, ok := idx[t.Status]; ok {
			cols[i].Tasks = append(cols[i].Tasks, t)
		}
	}
	return cols
}
