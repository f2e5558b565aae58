package launches

// Status is the launch status as reported by Launch Library.
type Status struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Mission describes the payload mission of a launch.
type Mission struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LaunchSummary is one search result row.
type LaunchSummary struct {
	ID      string
	Name    string
	Status  Status
	Mission string
}

// LaunchDetail is the full record shown on the detail view.
type LaunchDetail struct {
	ID          string
	Name        string
	WindowStart string
	WindowEnd   string
	Status      Status
	Mission     Mission
	Image       string
}

// searchResponse mirrors GET /launch/?mode=list.
type searchResponse struct {
	Count   int             `json:"count"`
	Results []summaryRecord `json:"results"`
}

type summaryRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Mission string `json:"mission"`
}

// launchPayload mirrors GET /launch/{id}/. Mission is null for launches
// without an announced payload.
type launchPayload struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	WindowStart string   `json:"window_start"`
	WindowEnd   string   `json:"window_end"`
	Status      Status   `json:"status"`
	Mission     *Mission `json:"mission"`
	Image       string   `json:"image"`
}

func (r summaryRecord) summary() LaunchSummary {
	return LaunchSummary{
		ID:      r.ID,
		Name:    r.Name,
		Status:  Status{Name: r.Status.Name},
		Mission: r.Mission,
	}
}

func (p launchPayload) detail() *LaunchDetail {
	d := &LaunchDetail{
		ID:          p.ID,
		Name:        p.Name,
		WindowStart: p.WindowStart,
		WindowEnd:   p.WindowEnd,
		Status:      p.Status,
		Image:       p.Image,
	}
	if p.Mission != nil {
		d.Mission = *p.Mission
	}
	return d
}
