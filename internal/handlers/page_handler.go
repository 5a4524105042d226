package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// PageHandler serves the minimal server-rendered pages. The dashboard is
// behind the access gate; the rest are public.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

const pageStyle = `<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:640px;margin:0 auto;padding:40px 20px;color:#333}h1{color:#1a1a1a}form{display:flex;flex-direction:column;gap:12px;max-width:320px}input,button,select{padding:8px;font-size:15px}a{color:#2563eb}.error{color:#b91c1c}</style>`

func (h *PageHandler) Landing(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Taskdeck</title>
<meta name="viewport" content="width=device-width, initial-scale=1">` + pageStyle + `
</head><body>
<h1>Taskdeck</h1>
<p>Track your tasks. Sign in to get started.</p>
<p><a href="/auth/login">Log in</a> &middot; <a href="/auth/signup">Sign up</a></p>
</body></html>`)
}

func (h *PageHandler) Login(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Log in - Taskdeck</title>
<meta name="viewport" content="width=device-width, initial-scale=1">` + pageStyle + `
</head><body>
<h1>Log in</h1>
<p id="error" class="error"></p>
<form id="login">
<input name="email" type="email" placeholder="Email" required>
<input name="password" type="password" placeholder="Password" required>
<button type="submit">Log in</button>
</form>
<p><a href="/api/auth/google">Sign in with Google</a></p>
<p>No account? <a href="/auth/signup">Sign up</a></p>
<script>
const params = new URLSearchParams(location.search);
if (params.get("error")) document.getElementById("error").textContent = "Sign-in failed: " + params.get("error");
document.getElementById("login").addEventListener("submit", async (e) => {
  e.preventDefault();
  const data = Object.fromEntries(new FormData(e.target));
  const res = await fetch("/api/auth/login", {
    method: "POST",
    headers: { "Content-Type": "application/json" },
    body: JSON.stringify(data),
  });
  if (res.ok) {
    location.href = params.get("redirect") || "/dashboard";
  } else {
    const body = await res.json();
    document.getElementById("error").textContent = body.message || "Login failed";
  }
});
</script>
</body></html>`)
}

func (h *PageHandler) Signup(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Sign up - Taskdeck</title>
<meta name="viewport" content="width=device-width, initial-scale=1">` + pageStyle + `
</head><body>
<h1>Sign up</h1>
<p id="error" class="error"></p>
<form id="signup">
<input name="email" type="email" placeholder="Email" required>
<input name="password" type="password" placeholder="Password (6+ characters)" required>
<button type="submit">Create account</button>
</form>
<p>Already registered? <a href="/auth/login">Log in</a></p>
<script>
document.getElementById("signup").addEventListener("submit", async (e) => {
  e.preventDefault();
  const data = Object.fromEntries(new FormData(e.target));
  const res = await fetch("/api/auth/signup", {
    method: "POST",
    headers: { "Content-Type": "application/json" },
    body: JSON.stringify(data),
  });
  if (res.ok) {
    location.href = "/auth/login";
  } else {
    const body = await res.json();
    document.getElementById("error").textContent = body.message || "Signup failed";
  }
});
</script>
</body></html>`)
}

func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Dashboard - Taskdeck</title>
<meta name="viewport" content="width=device-width, initial-scale=1">` + pageStyle + `
</head><body>
<h1>Your tasks</h1>
<form id="create">
<input name="title" placeholder="New task" required>
<button type="submit">Add</button>
</form>
<ul id="tasks"></ul>
<p><a href="#" id="logout">Log out</a></p>
<script>
async function load() {
  const res = await fetch("/api/tasks");
  if (!res.ok) { location.href = "/auth/login"; return; }
  const tasks = await res.json();
  const ul = document.getElementById("tasks");
  ul.innerHTML = "";
  for (const t of tasks) {
    const li = document.createElement("li");
    li.textContent = t.title + " [" + t.status + " / " + t.priority + "]";
    ul.appendChild(li);
  }
}
document.getElementById("create").addEventListener("submit", async (e) => {
  e.preventDefault();
  const data = Object.fromEntries(new FormData(e.target));
  await fetch("/api/tasks", {
    method: "POST",
    headers: { "Content-Type": "application/json" },
    body: JSON.stringify(data),
  });
  e.target.reset();
  load();
});
document.getElementById("logout").addEventListener("click", async (e) => {
  e.preventDefault();
  await fetch("/api/auth/logout", { method: "POST" });
  location.href = "/";
});
load();
</script>
</body></html>`)
}
