package component

// hookSnippet is the canned usage of one hook. Preamble lines go at module
// level before the component, body lines at the top of the function body.
type hookSnippet struct {
	preamble func(typed bool) []string
	body     func(typed bool) []string
}

var hookSnippets = map[Hook]hookSnippet{
	HookState: {
		body: func(typed bool) []string {
			state := "const [isActive, setIsActive] = useState(false);"
			if typed {
				state = "const [isActive, setIsActive] = useState<boolean>(false);"
			}
			return []string{
				state,
				"const toggleActive = () => setIsActive((previous) => !previous);",
			}
		},
	},
	HookEffect: {
		body: func(typed bool) []string {
			return []string{
				"useEffect(() => {",
				"  // Runs after the component mounts",
				"  return () => {",
				"    // Cleans up before the component unmounts",
				"  };",
				"}, []);",
			}
		},
	},
	HookContext: {
		body: func(typed bool) []string {
			return []string{
				"// Read a value from the nearest provider:",
				"// const theme = useContext(ThemeContext);",
			}
		},
	},
	HookReducer: {
		preamble: func(typed bool) []string {
			if typed {
				return []string{
					"type ReducerState = { count: number };",
					"type ReducerAction = { type: 'increment' };",
					"",
					"const initialState: ReducerState = { count: 0 };",
					"",
					"function reducer(state: ReducerState, action: ReducerAction): ReducerState {",
					"  switch (action.type) {",
					"    case 'increment':",
					"      return { count: state.count + 1 };",
					"    default:",
					"      return state;",
					"  }",
					"}",
				}
			}
			return []string{
				"const initialState = { count: 0 };",
				"",
				"function reducer(state, action) {",
				"  switch (action.type) {",
				"    case 'increment':",
				"      return { count: state.count + 1 };",
				"    default:",
				"      return state;",
				"  }",
				"}",
			}
		},
		body: func(typed bool) []string {
			return []string{"const [state, dispatch] = useReducer(reducer, initialState);"}
		},
	},
	HookCallback: {
		body: func(typed bool) []string {
			return []string{
				"const handleAction = useCallback(() => {",
				"  // Handle the action",
				"}, []);",
			}
		},
	},
	HookMemo: {
		body: func(typed bool) []string {
			return []string{"const memoizedValue = useMemo(() => null, []);"}
		},
	},
	HookRef: {
		body: func(typed bool) []string {
			if typed {
				return []string{"const inputRef = useRef<HTMLInputElement>(null);"}
			}
			return []string{"const inputRef = useRef(null);"}
		},
	},
}

func (p plan) writeHookPreambles(s *source) {
	for _, hook := range p.hooks {
		snippet := hookSnippets[hook]
		if snippet.preamble == nil {
			continue
		}
		s.lines(0, snippet.preamble(p.typed))
		s.blank()
	}
}

func (p plan) writeHookBodies(s *source, indent int) {
	if len(p.hooks) == 0 {
		return
	}
	for _, hook := range p.hooks {
		s.lines(indent, hookSnippets[hook].body(p.typed))
	}
	s.blank()
}

func (p plan) hookNames() []string {
	names := make([]string, 0, len(p.hooks))
	for _, hook := range p.hooks {
		names = append(names, string(hook))
	}
	return names
}
