package transport

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/pazarplus/toastkit/pkg/logger"
	"github.com/pazarplus/toastkit/pkg/stack"
	"github.com/pazarplus/toastkit/pkg/toast"
)

// handleStream pushes the toast regions over a DataStar SSE connection.
// Every stack change re-renders the affected region; DataStar morphs the
// element in place by ID, so entrance/exit classes and progress widths
// reach the page without any client-side toast code.
func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	sub := s.manager.Subscribe(r.Context())
	defer sub.Cancel()

	// Initial paint so a reconnecting client converges immediately.
	for _, pos := range toast.Positions {
		if err := s.patchRegion(sse, pos); err != nil {
			return
		}
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, ok := <-sub.C:
			if !ok {
				return
			}
			if ev.Kind == stack.EventCleared {
				for _, pos := range toast.Positions {
					if err := s.patchRegion(sse, pos); err != nil {
						return
					}
				}
				continue
			}
			if err := s.patchRegion(sse, ev.Toast.Position); err != nil {
				return
			}
		}
	}
}

func (s *Service) patchRegion(sse *datastar.ServerSentEventGenerator, pos toast.Position) error {
	html, err := renderRegion(s.theme, pos, s.manager.Snapshot(pos))
	if err != nil {
		s.logger.Error("failed to render toast region",
			logger.Position(pos),
			logger.Error(err),
		)
		return err
	}
	return sse.PatchElements(html)
}
