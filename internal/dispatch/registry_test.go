package dispatch

import (
	"context"
	"reflect"
	"testing"
)

type pipelineFunc func(ctx context.Context, input string) (Result, error)

func (f pipelineFunc) Run(ctx context.Context, input string) (Result, error) { return f(ctx, input) }

func echoPipeline() Pipeline {
	return pipelineFunc(func(_ context.Context, input string) (Result, error) {
		return Result{Text: input}, nil
	})
}

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()
	r.Register("blog", "1", Registration{Pipeline: echoPipeline(), ContentField: "blog"})

	reg, ok := r.Resolve("blog", "1")
	if !ok {
		t.Fatal("expected registration for blog/1")
	}
	if reg.ContentField != "blog" {
		t.Fatalf("ContentField = %q, want blog", reg.ContentField)
	}

	if _, ok := r.Resolve("blog", "9"); ok {
		t.Fatal("unexpected registration for blog/9")
	}
	if _, ok := r.Resolve("poetry", "1"); ok {
		t.Fatal("unexpected registration for poetry/1")
	}
}

func TestRegistryReplaceBinding(t *testing.T) {
	r := NewRegistry()
	r.Register("blog", "1", Registration{Pipeline: echoPipeline(), ContentField: "blog"})
	r.Register("blog", "1", Registration{Pipeline: echoPipeline(), ContentField: "content"})

	reg, ok := r.Resolve("blog", "1")
	if !ok || reg.ContentField != "content" {
		t.Fatalf("re-registration not applied, got %+v ok=%v", reg, ok)
	}
}

func TestRegistryCategoriesSorted(t *testing.T) {
	r := NewRegistry()
	for _, c := range []string{"youtube", "blog", "travel", "linkedin"} {
		r.Register(c, "1", Registration{Pipeline: echoPipeline(), ContentField: "content"})
	}
	want := []string{"blog", "linkedin", "travel", "youtube"}
	if got := r.Categories(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
}

func TestNilRegistryResolve(t *testing.T) {
	var r *Registry
	if _, ok := r.Resolve("blog", "1"); ok {
		t.Fatal("nil registry must not resolve")
	}
}
