// This file is part of Golem.
//
// Golem is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Golem is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Golem.  If not, see <https://www.gnu.org/licenses/>.

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/pkg/browser"

	"github.com/golem-fpga/golem/curated"
)

// Address is the default address of the server.
const Address = "localhost:12600"

const path = "/debug/statsview"

// URL returns the address of the statistics page for the server address.
func URL(addr string) string {
	return fmt.Sprintf("http://%s%s", addr, path)
}

// Server is a running statsview.
type Server struct {
	addr string
	mgr  *statsview.ViewManager
	once sync.Once
}

// Launch a new goroutine running the statsview. An empty address uses the
// default address.
func Launch(output io.Writer, addr string) *Server {
	if addr == "" {
		addr = Address
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))
	srv := &Server{
		addr: addr,
		mgr:  statsview.New(),
	}
	go srv.mgr.Start()

	output.Write([]byte(fmt.Sprintf("stats server available at %s\n", URL(addr))))

	return srv
}

// URL returns the address of the statistics page.
func (srv *Server) URL() string {
	return URL(srv.addr)
}

// Open the statistics page in the default browser.
func (srv *Server) Open() error {
	if err := browser.OpenURL(srv.URL()); err != nil {
		return curated.Errorf("statsview: %v", err)
	}
	return nil
}

// Stop the server. Stopping a server more than once has no effect.
func (srv *Server) Stop() {
	srv.once.Do(srv.mgr.Stop)
}
