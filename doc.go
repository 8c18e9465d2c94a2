// Package sole turns ordinary struct types into process-wide singletons.
//
// Sole guarantees that at most one instance of a defined type exists per
// process, with explicit policies for thread safety, subclass participation
// (struct embedding), and reinitialization.
//
// # Quick Start
//
// Define a singleton and construct it:
//
//	type Config struct {
//	    Port int
//	}
//
//	config := sole.MustDefine[Config, int](func(c *Config, port int) error {
//	    c.Port = port
//	    return nil
//	})
//
//	first, _ := config.New(8080)
//	second, _ := config.New(9090)
//	// first == second, Port is 8080: later arguments are ignored.
//
// The first type parameter is the wrapped type, the second is the argument
// passed to construction and initialization. Use struct{} when no argument
// is needed.
//
// # Definition
//
// Define registers a type and returns the Class handle that owns its
// instance slot:
//
//	sole.Define[T, A](init)                  // allocation via new(T)
//	sole.DefineFunc[T, A](construct, init)   // custom construction logic
//	sole.MustDefine[T, A](init)              // panics on error
//
// Only named struct types can be defined. Defining a function, map, scalar,
// or pointer type fails with an InvalidTarget error, and defining the same
// type twice fails with AlreadyDefined.
//
// # Construction
//
// Class.New resolves the shared instance, creating it lazily on first call:
//
//	inst, err := class.New(arg)
//	inst := class.MustNew(arg)
//
// The package-level New resolves the handle through the registry instead:
//
//	inst, err := sole.New[T, A](arg)
//
// This is the path on which subclass violations surface for types that were
// never defined themselves.
//
// # Thread Safety
//
// By default first-time construction is unguarded: concurrent first calls
// from multiple goroutines race by design, trading safety for throughput.
// Opt in to double-checked locking when callers construct concurrently:
//
//	sole.Define[T, A](init, sole.WithThreadSafe())
//
// Under WithThreadSafe exactly one goroutine runs the construction logic;
// every other concurrent caller observes the fully initialized instance.
//
// # Subclassing
//
// A type that embeds a defined singleton type is treated as its subclass.
// Embedding is rejected at construction time unless the parent was defined
// with WithSubclassing, and the subclass must be independently defined:
//
//	base := sole.MustDefine[Base, struct{}](nil, sole.WithSubclassing())
//
//	type Derived struct {
//	    Base
//	}
//	derived := sole.MustDefine[Derived, struct{}](nil)
//
// Parent and child own distinct slots; constructing one never touches the
// other. Constructing a subclass of a non-subclassable singleton fails with
// SubclassNotAllowed, and constructing an embedder that was never defined
// fails with SubclassNotSingleton.
//
// # Reassignment
//
// With WithReassignment the initialization logic re-runs on every
// construction call against the existing instance. Identity never changes,
// only state:
//
//	counter := sole.MustDefine[Counter, int](func(c *Counter, v int) error {
//	    c.Value = v
//	    return nil
//	}, sole.WithReassignment())
//
//	a, _ := counter.New(1)
//	b, _ := counter.New(2)
//	// a == b, a.Value == 2
//
// # Introspection
//
// Query the registry:
//
//	sole.IsSingleton[T]()       // true iff T itself was defined
//	sole.IsSingletonValue(v)    // reflect.Type-based variant; false for non-types
//	sole.Lookup[T]()            // the registration record
//	sole.Records()              // all records, sorted by key
//	sole.SprintRecords()        // human-readable dump
//
// # Observability
//
// Observe slot activity for metrics integration:
//
//	sole.Define[T, A](init,
//	    sole.WithLogger(logger),
//	    sole.WithCreateObserver(func(key string, d time.Duration, err error) {
//	        metrics.RecordCreate(key, d, err)
//	    }),
//	    sole.WithReuseObserver(func(key string) {
//	        metrics.RecordReuse(key)
//	    }),
//	)
//
// # Testing
//
// The soletest package defines singletons with automatic registry cleanup so
// each test case starts from a fresh slot. See soletest for details.
package sole
