package converter

import (
	"time"

	"airport-transfer-board/internal/delivery/dto"
	"airport-transfer-board/internal/domain/entity"
	"airport-transfer-board/internal/render"
)

// BoardStateToPageView maps the board state onto the kiosk page. The page reloads
// on HOME, and on SEARCH only while a result is shown so the inactivity return
// becomes visible.
func BoardStateToPageView(state *dto.BoardStateResponse, refresh time.Duration) render.PageView {
	view := render.PageView{
		Title:     state.Title,
		Screen:    state.Screen,
		Container: state.Container,
	}

	reload := state.Screen == render.ScreenHome
	if state.Search != nil {
		s := state.Search
		view.Search = render.SearchView{
			Query:          s.Query,
			LegendVisible:  s.LegendVisible,
			ResultVisible:  s.ResultVisible,
			Outcome:        s.Outcome,
			ContactMessage: s.ContactMessage,
			QRImageURL:     s.QRImageURL,
		}
		if s.Booking != nil {
			view.Search.Booking = &entity.Booking{
				ID:        s.Booking.ID,
				Flight:    s.Booking.Flight,
				HotelName: s.Booking.HotelName,
				Time:      s.Booking.Time,
			}
			view.Search.DatasetTitle = entity.Dataset(s.Booking.Dataset).Title()
		}
		reload = reload || s.ResultVisible
	}

	if reload {
		view.RefreshSeconds = refreshSeconds(refresh)
	}
	return view
}

func refreshSeconds(d time.Duration) int {
	secs := int(d.Round(time.Second) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}
