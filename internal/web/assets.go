package web

const stylesheet = `
:root{--bg:#FEFAE0;--primary:#5F6F52;--accent:#B99470;--sage:#A9B388;--moss:#8BA085;--text:#2A3B28}
*{box-sizing:border-box}
body{margin:0;background:var(--bg);color:var(--text);font-family:Georgia,"Times New Roman",serif;line-height:1.5}
a{color:var(--primary)}
.landing{min-height:100vh;display:flex;align-items:center;justify-content:center}
.landing-link{font-size:3rem;text-decoration:none;letter-spacing:.1em}
.error-page{text-align:center}
.hero{text-align:center;padding:3rem 1rem 2rem}
.eyebrow{text-transform:uppercase;letter-spacing:.3em;color:var(--accent);margin:0}
.hero h1{font-size:2.6rem;margin:.5rem 0;font-weight:normal}
.amp{color:var(--accent)}
.venue{display:inline-block;margin:.5rem 0 1.5rem;text-decoration:none}
.hero-image{display:block;max-width:100%;height:auto;margin:0 auto 1.5rem;border-radius:12px}
.countdown{display:flex;gap:1rem;justify-content:center}
.cd-unit{display:flex;flex-direction:column;min-width:4rem}
.cd-value{font-size:1.8rem;color:var(--primary)}
.cd-label{font-size:.75rem;text-transform:uppercase;letter-spacing:.15em}
main{max-width:560px;margin:0 auto;padding:1rem}
.rsvp-form h2{text-align:center;font-weight:normal}
.intro{text-align:center}
.counter{margin:2rem 0;text-align:center}
.counter-label{text-transform:uppercase;font-size:.8rem;letter-spacing:.15em}
.counter-row{display:flex;align-items:center;gap:.5rem}
.step{width:44px;height:44px;border-radius:50%;border:1px solid var(--primary);background:transparent;color:var(--primary);font-size:1.4rem;cursor:pointer}
.step:disabled{opacity:.3;cursor:default}
.track-window{flex:1;overflow:hidden;touch-action:pan-y;cursor:grab;user-select:none}
.track{display:flex;transition:transform .3s ease}
.track.dragging{transition:none}
.num{flex:none;height:64px;border:0;background:transparent;color:var(--text);font-size:2rem;cursor:pointer;transition:opacity .3s,transform .3s}
.num.active{color:var(--primary);font-weight:bold}
.dots{display:flex;gap:6px;justify-content:center;margin:.75rem 0}
.dot{width:6px;height:6px;border-radius:50%;background:var(--sage)}
.dot.active{background:var(--primary);width:16px;border-radius:3px}
.hint{font-size:.8rem;color:var(--moss);margin:0}
.card{background:#fff;border:1px solid var(--sage);border-radius:12px;padding:1rem;margin-bottom:1rem}
.card h3{margin:0 0 .75rem;font-weight:normal;display:flex;align-items:center;gap:.5rem}
.badge{display:inline-flex;align-items:center;justify-content:center;width:28px;height:28px;border-radius:50%;background:var(--primary);color:#fff;font-size:.9rem}
.field{display:block;margin-bottom:.75rem}
.field span,.choice span{display:block;font-size:.8rem;text-transform:uppercase;letter-spacing:.1em;color:var(--moss)}
.field input{width:100%;padding:.6rem;border:1px solid var(--sage);border-radius:8px;font:inherit;background:var(--bg)}
.field.invalid input{border-color:#b3261e;background:#fdecea}
.selectors{display:flex;gap:1rem}
.choice{flex:1}
.toggle{display:flex;border:1px solid var(--primary);border-radius:8px;overflow:hidden}
.opt{flex:1;padding:.5rem;border:0;background:transparent;color:var(--primary);font:inherit;cursor:pointer}
.opt.active{background:var(--primary);color:#fff}
.submit-area{text-align:center;margin:2rem 0}
.primary{width:100%;padding:1rem;border:0;border-radius:999px;background:var(--primary);color:#fff;font:inherit;letter-spacing:.15em;cursor:pointer}
.primary:disabled{opacity:.6;cursor:progress}
.banner{display:flex;justify-content:space-between;align-items:center;background:#fdecea;color:#b3261e;border-radius:8px;padding:.75rem 1rem;margin-bottom:1rem}
.banner-close{border:0;background:transparent;color:inherit;font-size:1.2rem;cursor:pointer}
.error{color:#b3261e}
.success h3{font-size:1.6rem;color:var(--primary);margin:0}
.link{border:0;background:transparent;color:var(--accent);text-decoration:underline;font:inherit;cursor:pointer}
.footer{text-align:center;padding:2rem 1rem;font-size:.8rem;color:var(--moss)}
`

// script drives the countdown, the drag gesture, the submit lock and the
// automatic dismiss of a settled submission. Without it the page still works
// through plain form posts.
const script = `
(function () {
  var cd = document.querySelector("[data-countdown]");
  if (cd && window.EventSource) {
    var es = new EventSource(cd.getAttribute("data-countdown"));
    es.onmessage = function (ev) {
      var p = JSON.parse(ev.data);
      ["days", "hours", "minutes", "seconds"].forEach(function (k) {
        var el = cd.querySelector('[data-unit="' + k + '"]');
        if (el) el.textContent = String(p[k]).padStart(2, "0");
      });
      if (p.passed) es.close();
    };
  }

  var form = document.querySelector("form.rsvp-form");
  if (!form) return;

  var win = form.querySelector(".track-window");
  var track = form.querySelector(".track");
  var counter = form.querySelector(".counter");
  var width = counter ? parseFloat(counter.getAttribute("data-item-width")) || 80 : 80;
  var base = track ? parseFloat(track.getAttribute("data-base")) || 0 : 0;
  var startX = null, dx = 0, dragged = false;

  function place(px) {
    track.style.transform = "translateX(calc(50% + " + px + "px))";
  }

  function move(x) {
    dx = x - startX;
    if (Math.abs(dx) > 5) dragged = true;
    place(base + dx);
  }

  if (win && track) {
    win.addEventListener("pointerdown", function (e) {
      startX = e.clientX; dx = 0; dragged = false;
      track.classList.add("dragging");
    });
    window.addEventListener("pointermove", function (e) {
      if (startX !== null) move(e.clientX);
    });
    window.addEventListener("pointerup", function () {
      if (startX === null) return;
      startX = null;
      track.classList.remove("dragging");
      if (!dragged) { place(base); return; }
      form.elements["gesture"].value = "release";
      form.elements["dx"].value = String(dx);
      form.requestSubmit ? form.requestSubmit() : form.submit();
    });
    win.addEventListener("click", function (e) {
      if (dragged) { e.preventDefault(); e.stopPropagation(); }
    }, true);
  }

  form.addEventListener("submit", function (e) {
    var btn = e.submitter;
    if (btn && btn.hasAttribute("data-submit")) {
      if (form.getAttribute("data-status") === "submitting") { e.preventDefault(); return; }
      form.setAttribute("data-status", "submitting");
      setTimeout(function () { btn.disabled = true; }, 0);
    }
  });

  var reset = parseInt(form.getAttribute("data-reset-after"), 10);
  if (reset > 0) {
    setTimeout(function () {
      var a = document.createElement("input");
      a.type = "hidden"; a.name = "action"; a.value = "dismiss";
      form.appendChild(a);
      form.submit();
    }, reset);
  }
})();
`
