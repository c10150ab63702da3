package detect_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"fridgescan/internal/detect"
	"fridgescan/internal/logging"
	"fridgescan/internal/scan"
)

type recordingSink struct {
	items []scan.Item

	// cancel, when set, is invoked after admitting the item at cancelAfter.
	cancel      context.CancelFunc
	cancelAfter int
}

func (s *recordingSink) AddItem(proto scan.Proto) scan.Item {
	item := proto.Item(fmt.Sprintf("item-%d", len(s.items)+1))
	s.items = append(s.items, item)
	if s.cancel != nil && len(s.items) == s.cancelAfter {
		s.cancel()
	}
	return item
}

func TestSimulateBatchShape(t *testing.T) {
	batch := detect.Simulate("")
	if len(batch) != 5 {
		t.Fatalf("expected 5 protos, got %d", len(batch))
	}

	identified, attention := 0, 0
	for _, proto := range batch {
		switch proto.DetectionType {
		case scan.DetectionIdentified:
			identified++
		case scan.DetectionContainer, scan.DetectionLowConfidence, scan.DetectionUnknown:
			attention++
		}
	}
	if identified != 3 || attention != 2 {
		t.Fatalf("expected 3 identified and 2 needing attention, got %d/%d", identified, attention)
	}

	// Detection order is fixed: the sealed container is third, the
	// low-confidence parcel fourth.
	if batch[2].DetectionType != scan.DetectionContainer || batch[2].ContainerType != scan.ContainerSteelDabba {
		t.Fatalf("unexpected third proto: %+v", batch[2])
	}
	if batch[3].DetectionType != scan.DetectionLowConfidence {
		t.Fatalf("unexpected fourth proto: %+v", batch[3])
	}
	if len(batch[2].AISuggestions) == 0 {
		t.Fatal("expected suggestions on the sealed container")
	}
}

func TestSimulateStampsImageRef(t *testing.T) {
	stamped := detect.Simulate("capture/shelf.jpg")
	for i, proto := range stamped {
		if proto.ImageRef != "capture/shelf.jpg" {
			t.Fatalf("proto %d not stamped: %q", i, proto.ImageRef)
		}
	}

	fallback := detect.Simulate("")
	for i, proto := range fallback {
		if proto.ImageRef == "" {
			t.Fatalf("proto %d missing fallback image ref", i)
		}
	}
}

func TestSimulatorDetectNeverFails(t *testing.T) {
	protos, err := detect.Simulator{}.Detect(context.Background(), "shelf.jpg")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(protos) != 5 {
		t.Fatalf("expected 5 protos, got %d", len(protos))
	}
}

func TestRevealerRunsBatch(t *testing.T) {
	sink := &recordingSink{}
	revealer := detect.NewRevealer(sink, time.Millisecond, logging.NewNop())

	var calls []int
	revealer.OnReveal = func(item scan.Item, revealed, total int) {
		if total != 5 {
			t.Fatalf("expected total 5, got %d", total)
		}
		calls = append(calls, revealed)
	}

	revealed, err := revealer.Run(context.Background(), detect.Simulate(""))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if revealed != 5 || len(sink.items) != 5 {
		t.Fatalf("expected 5 reveals, got %d (sink %d)", revealed, len(sink.items))
	}
	for i, call := range calls {
		if call != i+1 {
			t.Fatalf("reveal counts out of order: %v", calls)
		}
	}
	if sink.items[0].Name != "Spinach" {
		t.Fatalf("batch order not preserved: %+v", sink.items[0])
	}
}

func TestRevealerCancellationDiscardsRemainder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sink := &recordingSink{cancel: cancel, cancelAfter: 2}
	revealer := detect.NewRevealer(sink, time.Millisecond, logging.NewNop())

	revealed, err := revealer.Run(ctx, detect.Simulate(""))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if revealed != 2 || len(sink.items) != 2 {
		t.Fatalf("expected 2 reveals before cancel, got %d (sink %d)", revealed, len(sink.items))
	}
}

func TestRevealerEmptyBatch(t *testing.T) {
	sink := &recordingSink{}
	revealer := detect.NewRevealer(sink, time.Millisecond, logging.NewNop())

	revealed, err := revealer.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if revealed != 0 || len(sink.items) != 0 {
		t.Fatalf("expected no reveals, got %d", revealed)
	}
}
