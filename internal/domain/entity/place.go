package entity

// Place is a geocoded location.
type Place struct {
	Name       string     `json:"name"`
	Country    string     `json:"country"`
	Region     string     `json:"region,omitempty"`
	Timezone   string     `json:"timezone,omitempty"`
	Coordinate Coordinate `json:"coordinate"`
}

// DisplayName joins the place name with its region and country when present.
func (p Place) DisplayName() string {
	name := p.Name
	if p.Region != "" && p.Region != p.Name {
		name += ", " + p.Region
	}
	if p.Country != "" {
		name += ", " + p.Country
	}
	return name
}
