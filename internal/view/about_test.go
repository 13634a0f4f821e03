package view

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"personal-site/internal/client"
	"personal-site/internal/domain"
)

type fakeAboutAPI struct {
	about       domain.About
	err         error
	release     chan struct{}
	returned    chan struct{}
	ignoreCtx   bool
	calls       int32
	sawCanceled int32
}

func (f *fakeAboutAPI) About(ctx context.Context) (domain.About, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.returned != nil {
		defer close(f.returned)
	}
	if f.release != nil {
		if f.ignoreCtx {
			<-f.release
		} else {
			select {
			case <-f.release:
			case <-ctx.Done():
				atomic.StoreInt32(&f.sawCanceled, 1)
				return domain.About{}, ctx.Err()
			}
		}
	}
	return f.about, f.err
}

func waitDone(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	case <-time.After(2 * time.Second):
		return false
	}
}

func TestAboutView(t *testing.T) {
	Convey("Given an about view", t, func() {
		api := &fakeAboutAPI{about: domain.About{Info: []string{"one", "two", "three"}, Image: "/jennifer.jpg"}}
		v := NewAboutView(api)

		Convey("Before mounting it is not loaded", func() {
			st := v.State()
			So(st.Loaded, ShouldBeFalse)
			So(st.Info, ShouldBeEmpty)

			var buf bytes.Buffer
			So(v.Render(&buf), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "Loading...")
		})

		Convey("When it mounts and the load succeeds", func() {
			v.Mount(context.Background())
			So(waitDone(v.Done()), ShouldBeTrue)

			st := v.State()
			So(st.Loaded, ShouldBeTrue)
			So(st.Info, ShouldResemble, []string{"one", "two", "three"})
			So(st.Image, ShouldEqual, "/jennifer.jpg")
			So(st.Error, ShouldBeEmpty)

			Convey("It renders title, paragraphs and image", func() {
				var buf bytes.Buffer
				So(v.Render(&buf), ShouldBeNil)
				So(buf.String(), ShouldStartWith, "About Me")
				So(buf.String(), ShouldContainSubstring, "two")
				So(buf.String(), ShouldContainSubstring, "[image: /jennifer.jpg]")
			})
		})

		Convey("Mounting twice fetches once", func() {
			v.Mount(context.Background())
			v.Mount(context.Background())
			So(waitDone(v.Done()), ShouldBeTrue)
			So(atomic.LoadInt32(&api.calls), ShouldEqual, 1)
		})

		Convey("Mutating a returned state does not touch the view", func() {
			v.Mount(context.Background())
			So(waitDone(v.Done()), ShouldBeTrue)
			st := v.State()
			st.Info[0] = "changed"
			So(v.State().Info[0], ShouldEqual, "one")
		})
	})

	Convey("Given an about view whose load fails", t, func() {
		api := &fakeAboutAPI{err: &client.APIError{StatusCode: 400, Status: "failed to retrieve messages from the database", Kind: "store_unavailable"}}
		v := NewAboutView(api)
		v.Mount(context.Background())
		So(waitDone(v.Done()), ShouldBeTrue)

		Convey("It is loaded and shows the serialized error", func() {
			st := v.State()
			So(st.Loaded, ShouldBeTrue)
			So(st.Info, ShouldBeEmpty)
			So(st.Error, ShouldContainSubstring, `"statusCode": 400`)
			So(st.Error, ShouldContainSubstring, "store_unavailable")

			var buf bytes.Buffer
			So(v.Render(&buf), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "Error:")
		})
	})

	Convey("Given an about view with a plain transport error", t, func() {
		v := NewAboutView(&fakeAboutAPI{err: errors.New("connection refused")})
		v.Mount(context.Background())
		So(waitDone(v.Done()), ShouldBeTrue)
		So(v.State().Error, ShouldContainSubstring, `"message": "connection refused"`)
	})

	Convey("Given a slow load", t, func() {
		api := &fakeAboutAPI{
			about:    domain.About{Info: []string{"a", "b", "c"}, Image: "/x.jpg"},
			release:  make(chan struct{}),
			returned: make(chan struct{}),
		}
		v := NewAboutView(api)
		v.Mount(context.Background())

		Convey("Unmounting cancels the request and leaves the state untouched", func() {
			v.Unmount()
			So(waitDone(v.Done()), ShouldBeTrue)
			So(waitDone(api.returned), ShouldBeTrue)
			So(atomic.LoadInt32(&api.sawCanceled), ShouldEqual, 1)
			So(v.State().Loaded, ShouldBeFalse)
			So(v.State().Error, ShouldBeEmpty)
		})
	})

	Convey("Given a load that ignores cancellation", t, func() {
		api := &fakeAboutAPI{
			about:     domain.About{Info: []string{"a", "b", "c"}, Image: "/x.jpg"},
			release:   make(chan struct{}),
			returned:  make(chan struct{}),
			ignoreCtx: true,
		}
		v := NewAboutView(api)
		v.Mount(context.Background())

		Convey("A late result after unmount is discarded", func() {
			v.Unmount()
			close(api.release)
			So(waitDone(api.returned), ShouldBeTrue)
			time.Sleep(10 * time.Millisecond)
			st := v.State()
			So(st.Loaded, ShouldBeFalse)
			So(st.Info, ShouldBeEmpty)
		})

		Convey("Mount after unmount is a no-op", func() {
			v.Unmount()
			v.Mount(context.Background())
			close(api.release)
			So(waitDone(api.returned), ShouldBeTrue)
			So(atomic.LoadInt32(&api.calls), ShouldEqual, 1)
		})
	})
}
