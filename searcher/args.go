package searcher

// Defaults for minimax

const DefaultDepth = 3 // Plies searched below each root move

const DefaultGoroutines = 1 // Root moves scored concurrently
