package dispatch

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/agentscope-ai/agentscope/internal/telemetry"
)

// Engine fans a batch of requests out to their registered pipelines and
// collects one envelope per request, in request order. Failures are
// confined to their own slot: a panicking or erroring pipeline never
// disturbs its siblings or the caller.
type Engine struct {
	registry  *Registry
	logger    *log.Logger
	telemetry *telemetry.Telemetry
	semaphore chan struct{}
	timeout   time.Duration
}

// NewEngine creates a dispatch engine. maxConcurrent bounds the number of
// pipelines running at once; timeout (if positive) caps each pipeline run.
func NewEngine(registry *Registry, logger *log.Logger, tel *telemetry.Telemetry, maxConcurrent int, timeout time.Duration) *Engine {
	if logger == nil {
		logger = log.New(log.Writer(), "[Dispatch] ", log.LstdFlags)
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 8
	}
	return &Engine{
		registry:  registry,
		logger:    logger,
		telemetry: tel,
		semaphore: make(chan struct{}, maxConcurrent),
		timeout:   timeout,
	}
}

// DispatchBatch runs every resolvable request concurrently and returns
// envelopes positionally aligned with the input slice. Requests that are
// missing fields or name an unknown pipeline get an error envelope
// without executing anything.
func (e *Engine) DispatchBatch(ctx context.Context, requests []Request) []Envelope {
	envelopes := make([]Envelope, len(requests))
	if len(requests) == 0 {
		return envelopes
	}
	e.telemetry.RecordBatch(len(requests))

	var wg sync.WaitGroup
	for i, req := range requests {
		reg, ok := e.registry.Resolve(req.Category, req.ID)
		if req.Category == "" || req.ID == "" || !ok {
			msg := fmt.Sprintf("no function found for category '%s' and id %s", req.Category, req.ID)
			envelopes[i] = Envelope{ID: req.ID, Error: &msg}
			e.telemetry.RecordDispatch(req.Category, req.ID, "unresolved", 0)
			continue
		}

		wg.Add(1)
		go func(i int, req Request, reg Registration) {
			defer wg.Done()
			e.semaphore <- struct{}{}
			defer func() { <-e.semaphore }()

			started := time.Now()
			defer func() {
				if r := recover(); r != nil {
					e.logger.Printf("pipeline panic (category=%s id=%s): %v", req.Category, req.ID, r)
					msg := fmt.Sprintf("error executing function: %v", r)
					envelopes[i] = Envelope{ID: req.ID, Error: &msg}
					e.telemetry.RecordDispatch(req.Category, req.ID, "panic", time.Since(started))
				}
			}()

			runCtx := ctx
			if e.timeout > 0 {
				var cancel context.CancelFunc
				runCtx, cancel = context.WithTimeout(ctx, e.timeout)
				defer cancel()
			}

			res, err := reg.Pipeline.Run(runCtx, req.Input)
			if err != nil {
				e.logger.Printf("pipeline error (category=%s id=%s): %v", req.Category, req.ID, err)
				msg := fmt.Sprintf("error executing function: %v", err)
				envelopes[i] = Envelope{ID: req.ID, Error: &msg}
				e.telemetry.RecordDispatch(req.Category, req.ID, "error", time.Since(started))
				return
			}
			envelopes[i] = normalize(req.ID, reg.ContentField, res)
			outcome := "success"
			if envelopes[i].Error != nil {
				outcome = "error"
			}
			e.telemetry.RecordDispatch(req.Category, req.ID, outcome, time.Since(started))
		}(i, req, reg)
	}
	wg.Wait()
	return envelopes
}

// normalize converts a raw pipeline result into the envelope shape.
// Field maps are probed for the pipeline's own field first, then the
// generic keys; a map that carries none of them is treated as a fault.
func normalize(id, contentField string, res Result) Envelope {
	if res.Fields == nil {
		content := res.Text
		return Envelope{ID: id, Content: &content}
	}
	for _, key := range []string{contentField, "response", "content"} {
		if key == "" {
			continue
		}
		if text, ok := res.Fields[key]; ok {
			return Envelope{ID: id, Content: &text, ResponseTime: res.Elapsed}
		}
	}
	msg := fmt.Sprintf("error executing function: result carries no recognized content field for id %s", id)
	return Envelope{ID: id, Error: &msg}
}
