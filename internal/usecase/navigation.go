package usecase

import (
	"context"

	"airport-transfer-board/internal/service"
)

// EnterSearch moves HOME→SEARCH: fresh search panel, rotation and inactivity stopped
func (b *boardUsecase) EnterSearch(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enterSearch()
}

// ExitSearch moves SEARCH→HOME and restarts the table from page 1
func (b *boardUsecase) ExitSearch(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.exitSearch()
}

// Adventure acknowledges the secondary kiosk button. It has no state effect.
func (b *boardUsecase) Adventure(ctx context.Context) {
	b.metrics.AdventureClicks.Inc()
	b.log.Info("Adventure button pressed")
}

// enterSearch is entered from either screen; re-entering SEARCH resets the panel.
// Caller holds mu.
func (b *boardUsecase) enterSearch() {
	if b.screen != ScreenSearch {
		b.log.Info("Screen changed to search")
	}
	b.screen = ScreenSearch
	b.search = searchState{legendVisible: true}
	b.timers.Cancel(service.TimerRotation)
	b.timers.Cancel(service.TimerInactivity)
}

// exitSearch also serves as the inactivity timer callback. Caller holds mu.
func (b *boardUsecase) exitSearch() {
	if b.screen != ScreenHome {
		b.log.Info("Screen changed to home")
	}
	b.screen = ScreenHome
	b.search = searchState{}
	b.timers.Cancel(service.TimerInactivity)
	b.view.CurrentPage = 1
	b.render()
}
