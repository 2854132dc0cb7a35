package users

type View string

const (
	ViewBoard     View = "Board"
	ViewAnalytics View = "Analytics"
)

// DefaultView is where every session lands.
const DefaultView = ViewBoard

// AllowedViews lists the views a user may open, in sidebar order.
func AllowedViews(u User) []View {
	if u.IsScrumMaster() {
		return []View{ViewBoard, ViewAnalytics}
	}
	return []View{ViewBoard}
}

// EffectiveView is the view to render for a request: the requested one when
// the user's role permits it, otherwise DefaultView. Evaluated per request.
func EffectiveView(u User, requested View) View {
	for _, v := range AllowedViews(u) {
		if v == requested {
			return v
		}
	}
	return DefaultView
}
