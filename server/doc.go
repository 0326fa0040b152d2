// Package server exposes a calculator session as Model Context Protocol tools.
//
// The server speaks MCP over stdio and owns one session for the lifetime of
// the connection. Every tool returns the state as JSON:
//
//	{
//	  "session": "5f0c…",
//	  "display": "5",
//	  "pending": "",
//	  "first": "",
//	  "phase": "entering",
//	  "history": ["2 + 3 = 5"]
//	}
//
// Tools:
//
//	calculator.press      press keys given as text ("2 + 3 =", "12*4=")
//	calculator.state      read the state without pressing anything
//	calculator.all_clear  press AC
package server
