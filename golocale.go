// Package golocale resolves human-readable text for a locale from an
// in-memory snapshot, backed by a cache layer and a durable store.
//
// Golocale serves key lookups through a per-session registry that loads
// its snapshot cache-aside, degrades missing translations to the raw key,
// and queues unknown keys so they can be reconciled into the durable
// store once per locale.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/golocale"
//	    "github.com/ZaguanLabs/golocale/cache"
//	    "github.com/ZaguanLabs/golocale/store"
//	)
//
//	func main() {
//	    st := store.NewMemoryStore()
//	    st.Seed(store.Row{Key: "home.title", Value: "Bienvenido", Locale: "es"})
//
//	    reg := golocale.New(golocale.DefaultConfig(),
//	        golocale.WithStore(st),
//	        golocale.WithCache(cache.NewMemoryCache()),
//	    )
//
//	    if err := reg.Activate(context.Background(), "es"); err != nil {
//	        log.Fatal(err)
//	    }
//	    title, _ := reg.Get("home.title") // "Bienvenido"
//	    motto, _ := reg.Get("home.motto") // "home.motto", queued as missing
//	    fmt.Println(title, motto)
//	}
package golocale
