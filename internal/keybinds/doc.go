/*
Package keybinds provides customizable keyboard binding management.

# Overview

The keybinds package implements a context-aware keyboard binding system.
Every focusable region of the UI has its own context, and users can
override any binding through a keybinds.json file.

# Key Concepts

Contexts:
  - global: bindings available everywhere (force quit, focus next/prev, send)
  - address_bar, request_body, header_list, response_body, request_list:
    one per focus region
  - header_edit: a key/value pair is open in the request editor
  - confirm, text_input: popups

A key bound in a specific context shadows the global binding. The request
editor uses this to take over tab for switching between key and value
while a pair is being edited.

Global bindings must not be printable characters: text regions fall back
to global for every key they do not bind, and an unbound printable key is
inserted as text.

# Configuration File Format

Keybindings are stored in JSON; comments and trailing commas are allowed.
Each section maps a key to an action. An empty action removes the binding.

	{
	  "version": "1.0",
	  // send with ctrl+s instead of ctrl+r
	  "global": {
	    "ctrl+s": "send_request",
	    "ctrl+r": ""
	  },
	  "request_list": {
	    "x": "delete_request",
	  }
	}

# Validation

The validator checks for:
  - Unknown actions (errors)
  - Malformed keys such as a bare modifier (errors)
  - No key left to move focus (error)
  - Shadowing of global bindings (warnings)
  - Reserved key rebindings (warnings)
*/
package keybinds
