package response

import "backend/school-platform/app/database/entity"

// RegionView exposes the natural area code under the conventional "id"
// field so clients treat provinces and cities like any other resource.
type RegionView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ToProvinceViews(provinces []entity.Province) []RegionView {
	views := make([]RegionView, 0, len(provinces))
	for _, p := range provinces {
		views = append(views, RegionView{ID: p.Code, Name: p.Name})
	}
	return views
}

func ToCityViews(cities []entity.City) []RegionView {
	views := make([]RegionView, 0, len(cities))
	for _, c := range cities {
		views = append(views, RegionView{ID: c.Code, Name: c.Name})
	}
	return views
}
