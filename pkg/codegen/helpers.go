package codegen

// Screen recognition helpers emitted alongside the screen functions.
// These mirror the generator's own resolution logic with two
// relaxations for live matching (visibility filter, label length and
// digit checks) and a stricter final fallback: a screen the script
// cannot name is reported as unknown_screen, never unnamed_screen.

const normalizeHelper = `def normalize_to_snake_case(text):
    # This version assumes 're' is imported globally within the helper script
    if not text:
        return "unnamed_screen"
    if '.' in text and text.count('.') > 1:
        text = text.split('.')[-1]
    text = text.lower()
    text = re.sub(r'\s+', '_', text)
    text = re.sub(r'[^a-z0-9_]', '', text)
    text = re.sub(r'_+', '_', text)
    text = text.strip('_')
    if not text:
        return "unnamed_screen"
    if text[0].isdigit():
        return f"screen_{text}"
    return text`

const identifierHelper = `def get_current_screen_identifier(d):
    # This version assumes 're' is imported globally and normalize_to_snake_case is defined
    potential_name = ""
    title_ids_patterns = [".*[Tt]itle.*", ".*action_bar_title.*", ".*toolbar_title.*"]
    for pattern in title_ids_patterns:
        try:
            title_element = d(resourceIdMatches=pattern, visible=True)
            if title_element.exists and title_element.info.get('text'):
                potential_name = title_element.info.get('text')
                if potential_name: break
        except Exception: pass

    if not potential_name:
        try:
            text_views = d(className="android.widget.TextView", visible=True).all()
            text_views.sort(key=lambda x: (x.info['bounds']['top'], x.info['bounds']['left']))
            for i, tv in enumerate(text_views):
                if i >= 5: break
                text = tv.info.get('text')
                if text and 2 < len(text) < 50 and not text.isdigit() and text != potential_name:
                    potential_name = text
                    break
        except Exception: pass

    if not potential_name:
        try:
            activity_name = d.app_current().get('activity', '')
            if activity_name: potential_name = activity_name
        except Exception: potential_name = ""

    normalized_name = normalize_to_snake_case(potential_name if potential_name else "Unnamed Screen")
    if normalized_name == "unnamed_screen" or not normalized_name:
        return "unknown_screen"
    return normalized_name`

// HelperBlock returns the screen recognition helper functions as one
// Python source block with its own re import.
func HelperBlock() string {
	return "import re\n\n" + normalizeHelper + "\n\n\n" + identifierHelper
}
