package services

import (
	"context"
)

// listHolder is the part of a container the dispatch layer needs.
type listHolder[T any] interface {
	List() []T
	SetList([]T)
	Len() int
}

// channel is one persistence channel (a file format or the database) for one entity.
type channel[T any] struct {
	write func(ctx context.Context) error
	read  func(ctx context.Context) ([]T, error)
}

// recordSet lets the dispatch loops treat the four entity types uniformly.
type recordSet interface {
	name() string
	count() int
	save(ctx context.Context, format string) error
	// load reads one channel and returns a commit that installs the result.
	// Nothing changes until commit is called.
	load(ctx context.Context, format string) (commit func(), n int, err error)
}

type entitySet[T any] struct {
	entity   string
	holder   listHolder[T]
	channels map[string]channel[T]
}

func (s *entitySet[T]) name() string { return s.entity }

func (s *entitySet[T]) count() int { return s.holder.Len() }

func (s *entitySet[T]) save(ctx context.Context, format string) error {
	ch, ok := s.channels[format]
	if !ok {
		return unknownFormat(format)
	}
	return ch.write(ctx)
}

func (s *entitySet[T]) load(ctx context.Context, format string) (func(), int, error) {
	ch, ok := s.channels[format]
	if !ok {
		return nil, 0, unknownFormat(format)
	}
	items, err := ch.read(ctx)
	if err != nil {
		return nil, 0, err
	}
	return func() { s.holder.SetList(items) }, len(items), nil
}

func fileChannel[T any, C listHolder[T]](
	dir string,
	holder C,
	write func(dir string, c C) error,
	read func(dir string) ([]T, error),
) channel[T] {
	return channel[T]{
		write: func(context.Context) error { return write(dir, holder) },
		read:  func(context.Context) ([]T, error) { return read(dir) },
	}
}

// xmlList adapts an XML reader, which yields a whole container, to a list reader.
func xmlList[T any, C listHolder[T]](read func(dir string) (C, error)) func(dir string) ([]T, error) {
	return func(dir string) ([]T, error) {
		c, err := read(dir)
		if err != nil {
			return nil, err
		}
		return c.List(), nil
	}
}

func dbChannel[T any, C listHolder[T]](
	holder C,
	store func(ctx context.Context, c C) error,
	retrieve func(ctx context.Context) ([]T, error),
) channel[T] {
	return channel[T]{
		write: func(ctx context.Context) error { return store(ctx, holder) },
		read:  retrieve,
	}
}
