package config

// pakeSchema is the JSON Schema every embedded window document must satisfy
const pakeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["windows", "user_agent"],
  "properties": {
    "windows": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["url", "url_type", "transparent", "fullscreen", "width", "height", "resizable"],
        "properties": {
          "url": {"type": "string"},
          "url_type": {"type": "string", "enum": ["web", "local"]},
          "transparent": {"type": "boolean"},
          "fullscreen": {"type": "boolean"},
          "resizable": {"type": "boolean"},
          "width": {"type": "number", "exclusiveMinimum": 0},
          "height": {"type": "number", "exclusiveMinimum": 0}
        }
      }
    },
    "user_agent": {
      "type": "object",
      "required": ["macos", "linux", "windows"],
      "properties": {
        "macos": {"type": "string"},
        "linux": {"type": "string"},
        "windows": {"type": "string"}
      }
    }
  }
}`
